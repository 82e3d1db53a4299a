package repositories

import (
	"gorm.io/gorm"

	"qatardigital.app/configs/configsdatabase"
	"qatardigital.app/models"
)

// ITestimonialRepository persists client testimonials.
type ITestimonialRepository interface {
	Create(testimonial *models.Testimonial) error
	GetAll() ([]models.Testimonial, error)
	GetByProjectType(projectType string) ([]models.Testimonial, error)
	GetByID(id string) (*models.Testimonial, error)
	Delete(id string) (bool, error)
}

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository() ITestimonialRepository {
	return &TestimonialRepository{db: configsdatabase.GetDB()}
}

func (r *TestimonialRepository) Create(testimonial *models.Testimonial) error {
	return translateError(r.db.Create(testimonial).Error)
}

func (r *TestimonialRepository) GetAll() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.Order("created_at DESC").Find(&testimonials).Error
	return testimonials, translateError(err)
}

func (r *TestimonialRepository) GetByProjectType(projectType string) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.Where("project_type = ?", projectType).Order("created_at DESC").Find(&testimonials).Error
	return testimonials, translateError(err)
}

func (r *TestimonialRepository) GetByID(id string) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := r.db.First(&testimonial, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &testimonial, nil
}

func (r *TestimonialRepository) Delete(id string) (bool, error) {
	res := r.db.Delete(&models.Testimonial{}, "id = ?", id)
	if res.Error != nil {
		return false, translateError(res.Error)
	}
	return res.RowsAffected > 0, nil
}
