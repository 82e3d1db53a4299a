package repositories

import (
	"gorm.io/gorm"

	"qatardigital.app/configs/configsdatabase"
	"qatardigital.app/models"
)

// IPortfolioRepository persists portfolio case studies.
type IPortfolioRepository interface {
	Create(project *models.PortfolioProject) error
	GetAll() ([]models.PortfolioProject, error)
	GetByType(projectType string) ([]models.PortfolioProject, error)
	GetByID(id string) (*models.PortfolioProject, error)
	Update(id string, updates map[string]interface{}) (*models.PortfolioProject, error)
	Delete(id string) (bool, error)
}

type PortfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository() IPortfolioRepository {
	return &PortfolioRepository{db: configsdatabase.GetDB()}
}

func (r *PortfolioRepository) Create(project *models.PortfolioProject) error {
	return translateError(r.db.Create(project).Error)
}

func (r *PortfolioRepository) GetAll() ([]models.PortfolioProject, error) {
	var projects []models.PortfolioProject
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, translateError(err)
}

func (r *PortfolioRepository) GetByType(projectType string) ([]models.PortfolioProject, error) {
	var projects []models.PortfolioProject
	err := r.db.Where("type = ?", projectType).Order("created_at DESC").Find(&projects).Error
	return projects, translateError(err)
}

func (r *PortfolioRepository) GetByID(id string) (*models.PortfolioProject, error) {
	var project models.PortfolioProject
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &project, nil
}

func (r *PortfolioRepository) Update(id string, updates map[string]interface{}) (*models.PortfolioProject, error) {
	project, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(project).Updates(updates).Error; err != nil {
		return nil, translateError(err)
	}
	return project, nil
}

func (r *PortfolioRepository) Delete(id string) (bool, error) {
	res := r.db.Delete(&models.PortfolioProject{}, "id = ?", id)
	if res.Error != nil {
		return false, translateError(res.Error)
	}
	return res.RowsAffected > 0, nil
}
