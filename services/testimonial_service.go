package services

import (
	"qatardigital.app/models"
	"qatardigital.app/repositories"
)

// ITestimonialService manages client testimonials.
type ITestimonialService interface {
	CreateTestimonial(input models.TestimonialInput) (*models.Testimonial, error)
	ListTestimonials(projectType string) ([]models.Testimonial, error)
	DeleteTestimonial(id string) (bool, error)
}

type TestimonialService struct {
	repo repositories.ITestimonialRepository
}

func NewTestimonialService() ITestimonialService {
	return &TestimonialService{repo: repositories.NewTestimonialRepository()}
}

func (s *TestimonialService) CreateTestimonial(input models.TestimonialInput) (*models.Testimonial, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	testimonial := &models.Testimonial{
		ClientName:     input.ClientName,
		ClientPosition: input.ClientPosition,
		ClientCompany:  input.ClientCompany,
		Rating:         input.Rating,
		Testimonial:    input.Testimonial,
		ProjectType:    input.ProjectType,
		AvatarURL:      input.AvatarURL,
	}
	if err := s.repo.Create(testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (s *TestimonialService) ListTestimonials(projectType string) ([]models.Testimonial, error) {
	if projectType != "" {
		return s.repo.GetByProjectType(projectType)
	}
	return s.repo.GetAll()
}

func (s *TestimonialService) DeleteTestimonial(id string) (bool, error) {
	return s.repo.Delete(id)
}
