package repositories

import (
	"gorm.io/gorm"

	"qatardigital.app/configs/configsdatabase"
	"qatardigital.app/models"
)

// IServiceRepository persists priced service packages. Public listings only
// ever see active services; the admin listing sees everything.
type IServiceRepository interface {
	Create(service *models.Service) error
	GetActive(category string) ([]models.Service, error)
	GetAll(category string) ([]models.Service, error)
	GetByID(id string) (*models.Service, error)
	Update(id string, updates map[string]interface{}) (*models.Service, error)
	Delete(id string) (bool, error)
}

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository() IServiceRepository {
	return &ServiceRepository{db: configsdatabase.GetDB()}
}

// serviceOrder is the public sort contract: explicit display order first,
// newest as tie-breaker.
func serviceOrder(q *gorm.DB) *gorm.DB {
	return q.Order("display_order ASC").Order("created_at DESC")
}

func (r *ServiceRepository) Create(service *models.Service) error {
	return translateError(r.db.Create(service).Error)
}

func (r *ServiceRepository) GetActive(category string) ([]models.Service, error) {
	var services []models.Service
	q := r.db.Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := serviceOrder(q).Find(&services).Error
	return services, translateError(err)
}

func (r *ServiceRepository) GetAll(category string) ([]models.Service, error) {
	var services []models.Service
	q := r.db.Session(&gorm.Session{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := serviceOrder(q).Find(&services).Error
	return services, translateError(err)
}

func (r *ServiceRepository) GetByID(id string) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &service, nil
}

func (r *ServiceRepository) Update(id string, updates map[string]interface{}) (*models.Service, error) {
	service, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(service).Updates(updates).Error; err != nil {
		return nil, translateError(err)
	}
	return service, nil
}

func (r *ServiceRepository) Delete(id string) (bool, error) {
	res := r.db.Delete(&models.Service{}, "id = ?", id)
	if res.Error != nil {
		return false, translateError(res.Error)
	}
	return res.RowsAffected > 0, nil
}
