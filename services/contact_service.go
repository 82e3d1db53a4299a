package services

import (
	"qatardigital.app/models"
	"qatardigital.app/pkg/apperrors"
	"qatardigital.app/pkg/validation"
	"qatardigital.app/repositories"
)

// IContactService handles contact form submissions.
type IContactService interface {
	CreateSubmission(input models.ContactSubmissionInput) (*models.ContactSubmission, error)
	GetAllSubmissions() ([]models.ContactSubmission, error)
}

type ContactService struct {
	repo repositories.IContactRepository
}

func NewContactService() IContactService {
	return &ContactService{repo: repositories.NewContactRepository()}
}

func (s *ContactService) CreateSubmission(input models.ContactSubmissionInput) (*models.ContactSubmission, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	submission := &models.ContactSubmission{
		Name:               input.Name,
		Company:            input.Company,
		Email:              input.Email,
		Phone:              input.Phone,
		ServiceNeeded:      input.ServiceNeeded,
		ProjectDescription: input.ProjectDescription,
	}
	if err := s.repo.Create(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *ContactService) GetAllSubmissions() ([]models.ContactSubmission, error) {
	return s.repo.GetAll()
}

// validateInput runs struct validation and wraps failures into the
// application's ValidationError so handlers can emit field-level details.
func validateInput(input interface{}) error {
	err := validation.ValidateStruct(input)
	if err == nil {
		return nil
	}
	if fieldErrs, ok := err.(validation.Errors); ok {
		return apperrors.NewValidationError(fieldErrs, err)
	}
	return apperrors.NewValidationError(nil, err)
}
