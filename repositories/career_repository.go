package repositories

import (
	"gorm.io/gorm"

	"qatardigital.app/configs/configsdatabase"
	"qatardigital.app/models"
)

// ICareerRepository persists job openings. Closed positions are filtered
// here, server-side, so public handlers cannot leak them by accident.
type ICareerRepository interface {
	Create(career *models.Career) error
	GetAll() ([]models.Career, error)
	GetOpen() ([]models.Career, error)
	GetByID(id string) (*models.Career, error)
	Update(id string, updates map[string]interface{}) (*models.Career, error)
	Delete(id string) (bool, error)
}

type CareerRepository struct {
	db *gorm.DB
}

func NewCareerRepository() ICareerRepository {
	return &CareerRepository{db: configsdatabase.GetDB()}
}

func (r *CareerRepository) Create(career *models.Career) error {
	return translateError(r.db.Create(career).Error)
}

func (r *CareerRepository) GetAll() ([]models.Career, error) {
	var careers []models.Career
	err := r.db.Order("created_at DESC").Find(&careers).Error
	return careers, translateError(err)
}

func (r *CareerRepository) GetOpen() ([]models.Career, error) {
	var careers []models.Career
	err := r.db.Where("status = ?", models.CareerStatusOpen).Order("created_at DESC").Find(&careers).Error
	return careers, translateError(err)
}

func (r *CareerRepository) GetByID(id string) (*models.Career, error) {
	var career models.Career
	if err := r.db.First(&career, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &career, nil
}

func (r *CareerRepository) Update(id string, updates map[string]interface{}) (*models.Career, error) {
	career, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(career).Updates(updates).Error; err != nil {
		return nil, translateError(err)
	}
	return career, nil
}

func (r *CareerRepository) Delete(id string) (bool, error) {
	res := r.db.Delete(&models.Career{}, "id = ?", id)
	if res.Error != nil {
		return false, translateError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

