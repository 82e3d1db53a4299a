package repositories

import (
	"gorm.io/gorm"

	"qatardigital.app/configs/configsdatabase"
	"qatardigital.app/models"
)

// IBlogRepository persists blog posts. Slug is the public lookup key;
// a duplicate slug surfaces as apperrors.ErrDuplicate, never an overwrite.
type IBlogRepository interface {
	Create(post *models.BlogPost) error
	GetAll() ([]models.BlogPost, error)
	GetBySlug(slug string) (*models.BlogPost, error)
	GetByID(id string) (*models.BlogPost, error)
	Update(id string, updates map[string]interface{}) (*models.BlogPost, error)
	Delete(id string) (bool, error)
}

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository() IBlogRepository {
	return &BlogRepository{db: configsdatabase.GetDB()}
}

func (r *BlogRepository) Create(post *models.BlogPost) error {
	return translateError(r.db.Create(post).Error)
}

func (r *BlogRepository) GetAll() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Order("published_at DESC").Find(&posts).Error
	return posts, translateError(err)
}

func (r *BlogRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.First(&post, "slug = ?", slug).Error; err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

func (r *BlogRepository) GetByID(id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

func (r *BlogRepository) Update(id string, updates map[string]interface{}) (*models.BlogPost, error) {
	post, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(post).Updates(updates).Error; err != nil {
		return nil, translateError(err)
	}
	return post, nil
}

func (r *BlogRepository) Delete(id string) (bool, error) {
	res := r.db.Delete(&models.BlogPost{}, "id = ?", id)
	if res.Error != nil {
		return false, translateError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

