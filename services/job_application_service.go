package services

import (
	"errors"
	"strings"

	"qatardigital.app/models"
	"qatardigital.app/pkg/apperrors"
	"qatardigital.app/pkg/validation"
	"qatardigital.app/repositories"
)

// IJobApplicationService manages candidate submissions.
type IJobApplicationService interface {
	CreateApplication(input models.JobApplicationInput) (*models.JobApplication, error)
	ListApplications(careerID string) ([]models.JobApplication, error)
	GetApplication(id string) (*models.JobApplication, error)
	UpdateApplicationStatus(id string, input models.ApplicationStatusInput) (*models.JobApplication, error)
}

type JobApplicationService struct {
	repo       repositories.IJobApplicationRepository
	careerRepo repositories.ICareerRepository
}

func NewJobApplicationService() IJobApplicationService {
	return &JobApplicationService{
		repo:       repositories.NewJobApplicationRepository(),
		careerRepo: repositories.NewCareerRepository(),
	}
}

// CreateApplication validates the payload and checks the referenced career
// exists. Status always starts at pending regardless of the payload.
func (s *JobApplicationService) CreateApplication(input models.JobApplicationInput) (*models.JobApplication, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if _, err := s.careerRepo.GetByID(input.CareerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			details := validation.Errors{{Field: "careerId", Message: "references an unknown career"}}
			return nil, apperrors.NewValidationError(details, err)
		}
		return nil, err
	}
	application := &models.JobApplication{
		CareerID:          input.CareerID,
		FullName:          input.FullName,
		Email:             input.Email,
		Phone:             input.Phone,
		CoverLetter:       input.CoverLetter,
		ResumeURL:         input.ResumeURL,
		LinkedinURL:       input.LinkedinURL,
		PortfolioURL:      input.PortfolioURL,
		YearsOfExperience: input.YearsOfExperience,
		Status:            models.ApplicationStatusPending,
	}
	if err := s.repo.Create(application); err != nil {
		return nil, err
	}
	return application, nil
}

func (s *JobApplicationService) ListApplications(careerID string) ([]models.JobApplication, error) {
	return s.repo.GetAll(careerID)
}

func (s *JobApplicationService) GetApplication(id string) (*models.JobApplication, error) {
	return s.repo.GetByID(id)
}

// UpdateApplicationStatus is the only mutation an application admits after
// creation.
func (s *JobApplicationService) UpdateApplicationStatus(id string, input models.ApplicationStatusInput) (*models.JobApplication, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if !models.IsValidApplicationStatus(input.Status) {
		details := validation.Errors{{
			Field:   "status",
			Message: "must be one of: " + strings.Join(models.ApplicationStatuses, ", "),
		}}
		return nil, apperrors.NewValidationError(details, nil)
	}
	return s.repo.UpdateStatus(id, input.Status)
}
