package repositories

import (
	"gorm.io/gorm"

	"qatardigital.app/configs/configsdatabase"
	"qatardigital.app/models"
)

// IJobApplicationRepository persists candidate submissions. Everything but
// Status is immutable after creation; UpdateStatus is the only mutation.
type IJobApplicationRepository interface {
	Create(application *models.JobApplication) error
	GetAll(careerID string) ([]models.JobApplication, error)
	GetByID(id string) (*models.JobApplication, error)
	UpdateStatus(id string, status string) (*models.JobApplication, error)
}

type JobApplicationRepository struct {
	db *gorm.DB
}

func NewJobApplicationRepository() IJobApplicationRepository {
	return &JobApplicationRepository{db: configsdatabase.GetDB()}
}

func (r *JobApplicationRepository) Create(application *models.JobApplication) error {
	return translateError(r.db.Create(application).Error)
}

func (r *JobApplicationRepository) GetAll(careerID string) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	q := r.db.Session(&gorm.Session{})
	if careerID != "" {
		q = q.Where("career_id = ?", careerID)
	}
	err := q.Order("created_at DESC").Find(&applications).Error
	return applications, translateError(err)
}

func (r *JobApplicationRepository) GetByID(id string) (*models.JobApplication, error) {
	var application models.JobApplication
	if err := r.db.First(&application, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &application, nil
}

func (r *JobApplicationRepository) UpdateStatus(id string, status string) (*models.JobApplication, error) {
	application, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(application).Update("status", status).Error; err != nil {
		return nil, translateError(err)
	}
	return application, nil
}
