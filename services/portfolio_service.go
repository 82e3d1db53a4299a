package services

import (
	"qatardigital.app/models"
	"qatardigital.app/repositories"
)

// IPortfolioService manages portfolio case studies.
type IPortfolioService interface {
	CreateProject(input models.PortfolioProjectInput) (*models.PortfolioProject, error)
	ListProjects(projectType string) ([]models.PortfolioProject, error)
	GetProject(id string) (*models.PortfolioProject, error)
	UpdateProject(id string, input models.PortfolioProjectInput) (*models.PortfolioProject, error)
	DeleteProject(id string) (bool, error)
}

type PortfolioService struct {
	repo repositories.IPortfolioRepository
}

func NewPortfolioService() IPortfolioService {
	return &PortfolioService{repo: repositories.NewPortfolioRepository()}
}

func (s *PortfolioService) CreateProject(input models.PortfolioProjectInput) (*models.PortfolioProject, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	project := &models.PortfolioProject{
		Title:        input.Title,
		Category:     input.Category,
		Description:  input.Description,
		Type:         input.Type,
		Client:       input.Client,
		Challenge:    input.Challenge,
		Solution:     input.Solution,
		Results:      input.Results,
		Technologies: input.Technologies,
		ImageURL:     input.ImageURL,
	}
	if err := s.repo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *PortfolioService) ListProjects(projectType string) ([]models.PortfolioProject, error) {
	if projectType != "" {
		return s.repo.GetByType(projectType)
	}
	return s.repo.GetAll()
}

func (s *PortfolioService) GetProject(id string) (*models.PortfolioProject, error) {
	return s.repo.GetByID(id)
}

// UpdateProject replaces every client-editable field. The update map uses
// column names so the localized pairs land in their prefixed columns.
func (s *PortfolioService) UpdateProject(id string, input models.PortfolioProjectInput) (*models.PortfolioProject, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"title_en":       input.Title.En,
		"title_ar":       input.Title.Ar,
		"category_en":    input.Category.En,
		"category_ar":    input.Category.Ar,
		"description_en": input.Description.En,
		"description_ar": input.Description.Ar,
		"type":           input.Type,
		"client_en":      input.Client.En,
		"client_ar":      input.Client.Ar,
		"challenge_en":   input.Challenge.En,
		"challenge_ar":   input.Challenge.Ar,
		"solution_en":    input.Solution.En,
		"solution_ar":    input.Solution.Ar,
		"results_en":     input.Results.En,
		"results_ar":     input.Results.Ar,
		"technologies":   input.Technologies,
		"image_url":      input.ImageURL,
	}
	return s.repo.Update(id, updates)
}

func (s *PortfolioService) DeleteProject(id string) (bool, error) {
	return s.repo.Delete(id)
}
