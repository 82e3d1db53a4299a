package services

import (
	"qatardigital.app/models"
	"qatardigital.app/pkg/apperrors"
	"qatardigital.app/repositories"
)

// ICareerService manages job openings.
type ICareerService interface {
	CreateCareer(input models.CareerInput) (*models.Career, error)
	ListOpenCareers() ([]models.Career, error)
	ListAllCareers() ([]models.Career, error)
	GetCareer(id string) (*models.Career, error)
	GetOpenCareer(id string) (*models.Career, error)
	UpdateCareer(id string, input models.CareerInput) (*models.Career, error)
	DeleteCareer(id string) (bool, error)
}

type CareerService struct {
	repo repositories.ICareerRepository
}

func NewCareerService() ICareerService {
	return &CareerService{repo: repositories.NewCareerRepository()}
}

func (s *CareerService) CreateCareer(input models.CareerInput) (*models.Career, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	status := input.Status
	if status == "" {
		status = models.CareerStatusOpen
	}
	career := &models.Career{
		Title:            input.Title,
		Department:       input.Department,
		Location:         input.Location,
		Type:             input.Type,
		Description:      input.Description,
		Requirements:     input.Requirements,
		Responsibilities: input.Responsibilities,
		Status:           status,
	}
	if err := s.repo.Create(career); err != nil {
		return nil, err
	}
	return career, nil
}

func (s *CareerService) ListOpenCareers() ([]models.Career, error) {
	return s.repo.GetOpen()
}

func (s *CareerService) ListAllCareers() ([]models.Career, error) {
	return s.repo.GetAll()
}

func (s *CareerService) GetCareer(id string) (*models.Career, error) {
	return s.repo.GetByID(id)
}

// GetOpenCareer is the public lookup: a closed position is indistinguishable
// from a missing one.
func (s *CareerService) GetOpenCareer(id string) (*models.Career, error) {
	career, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if career.Status != models.CareerStatusOpen {
		return nil, apperrors.ErrNotFound
	}
	return career, nil
}

func (s *CareerService) UpdateCareer(id string, input models.CareerInput) (*models.Career, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"title_en":             input.Title.En,
		"title_ar":             input.Title.Ar,
		"department_en":        input.Department.En,
		"department_ar":        input.Department.Ar,
		"location_en":          input.Location.En,
		"location_ar":          input.Location.Ar,
		"type_en":              input.Type.En,
		"type_ar":              input.Type.Ar,
		"description_en":       input.Description.En,
		"description_ar":       input.Description.Ar,
		"requirements_en":      input.Requirements.En,
		"requirements_ar":      input.Requirements.Ar,
		"responsibilities_en":  input.Responsibilities.En,
		"responsibilities_ar":  input.Responsibilities.Ar,
	}
	if input.Status != "" {
		updates["status"] = input.Status
	}
	return s.repo.Update(id, updates)
}

func (s *CareerService) DeleteCareer(id string) (bool, error) {
	return s.repo.Delete(id)
}
