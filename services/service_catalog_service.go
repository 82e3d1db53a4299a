package services

import (
	"qatardigital.app/models"
	"qatardigital.app/repositories"
)

// IServiceCatalogService manages the priced service packages. "Catalog"
// distinguishes the entity from this package's own name.
type IServiceCatalogService interface {
	CreateService(input models.ServiceInput) (*models.Service, error)
	ListActiveServices(category string) ([]models.Service, error)
	ListAllServices(category string) ([]models.Service, error)
	GetService(id string) (*models.Service, error)
	UpdateService(id string, input models.ServiceInput) (*models.Service, error)
	DeleteService(id string) (bool, error)
}

type ServiceCatalogService struct {
	repo repositories.IServiceRepository
}

func NewServiceCatalogService() IServiceCatalogService {
	return &ServiceCatalogService{repo: repositories.NewServiceRepository()}
}

func (s *ServiceCatalogService) CreateService(input models.ServiceInput) (*models.Service, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	service := &models.Service{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Category:     input.Category,
		Features:     input.Features,
		IsActive:     input.Active(),
		DisplayOrder: input.DisplayOrder,
	}
	if err := s.repo.Create(service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *ServiceCatalogService) ListActiveServices(category string) ([]models.Service, error) {
	return s.repo.GetActive(category)
}

func (s *ServiceCatalogService) ListAllServices(category string) ([]models.Service, error) {
	return s.repo.GetAll(category)
}

func (s *ServiceCatalogService) GetService(id string) (*models.Service, error) {
	return s.repo.GetByID(id)
}

func (s *ServiceCatalogService) UpdateService(id string, input models.ServiceInput) (*models.Service, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"name_en":        input.Name.En,
		"name_ar":        input.Name.Ar,
		"description_en": input.Description.En,
		"description_ar": input.Description.Ar,
		"price_en":       input.Price.En,
		"price_ar":       input.Price.Ar,
		"category":       input.Category,
		"features_en":    input.Features.En,
		"features_ar":    input.Features.Ar,
		"is_active":      input.Active(),
		"display_order":  input.DisplayOrder,
	}
	return s.repo.Update(id, updates)
}

func (s *ServiceCatalogService) DeleteService(id string) (bool, error) {
	return s.repo.Delete(id)
}
