package services

import (
	"time"

	"qatardigital.app/models"
	"qatardigital.app/repositories"
)

// IBlogService manages blog posts.
type IBlogService interface {
	CreatePost(input models.BlogPostInput) (*models.BlogPost, error)
	ListPosts() ([]models.BlogPost, error)
	GetPostBySlug(slug string) (*models.BlogPost, error)
	UpdatePost(id string, input models.BlogPostInput) (*models.BlogPost, error)
	DeletePost(id string) (bool, error)
}

type BlogService struct {
	repo repositories.IBlogRepository
}

func NewBlogService() IBlogService {
	return &BlogService{repo: repositories.NewBlogRepository()}
}

func (s *BlogService) CreatePost(input models.BlogPostInput) (*models.BlogPost, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	publishedAt := time.Now()
	if input.PublishedAt != nil {
		publishedAt = *input.PublishedAt
	}
	post := &models.BlogPost{
		Title:       input.Title,
		Slug:        input.Slug,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		Category:    input.Category,
		Author:      input.Author,
		ImageURL:    input.ImageURL,
		PublishedAt: publishedAt,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogService) ListPosts() ([]models.BlogPost, error) {
	return s.repo.GetAll()
}

func (s *BlogService) GetPostBySlug(slug string) (*models.BlogPost, error) {
	return s.repo.GetBySlug(slug)
}

func (s *BlogService) UpdatePost(id string, input models.BlogPostInput) (*models.BlogPost, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"title_en":    input.Title.En,
		"title_ar":    input.Title.Ar,
		"slug":        input.Slug,
		"excerpt_en":  input.Excerpt.En,
		"excerpt_ar":  input.Excerpt.Ar,
		"content_en":  input.Content.En,
		"content_ar":  input.Content.Ar,
		"category_en": input.Category.En,
		"category_ar": input.Category.Ar,
		"author_en":   input.Author.En,
		"author_ar":   input.Author.Ar,
		"image_url":   input.ImageURL,
	}
	if input.PublishedAt != nil {
		updates["published_at"] = *input.PublishedAt
	}
	return s.repo.Update(id, updates)
}

func (s *BlogService) DeletePost(id string) (bool, error) {
	return s.repo.Delete(id)
}
