package repositories

import (
	"gorm.io/gorm"

	"qatardigital.app/configs/configsdatabase"
	"qatardigital.app/models"
)

// IContactRepository persists contact form submissions. Submissions are
// append-only: there is deliberately no update or delete.
type IContactRepository interface {
	Create(submission *models.ContactSubmission) error
	GetAll() ([]models.ContactSubmission, error)
}

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository() IContactRepository {
	return &ContactRepository{db: configsdatabase.GetDB()}
}

func (r *ContactRepository) Create(submission *models.ContactSubmission) error {
	return translateError(r.db.Create(submission).Error)
}

func (r *ContactRepository) GetAll() ([]models.ContactSubmission, error) {
	var submissions []models.ContactSubmission
	err := r.db.Order("created_at DESC").Find(&submissions).Error
	return submissions, translateError(err)
}
