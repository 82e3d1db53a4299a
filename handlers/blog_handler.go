package handlers

import (
	"github.com/gofiber/fiber/v2"

	"qatardigital.app/models"
	"qatardigital.app/services"
)

// BlogHandler serves blog posts. Public lookup is by slug, admin mutations
// by id.
type BlogHandler struct {
	service services.IBlogService
}

func NewBlogHandler() *BlogHandler {
	return &BlogHandler{service: services.NewBlogService()}
}

// List handles GET /api/blog, ordered by publish date descending.
func (h *BlogHandler) List(c *fiber.Ctx) error {
	posts, err := h.service.ListPosts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetBySlug handles GET /api/blog/:slug.
func (h *BlogHandler) GetBySlug(c *fiber.Ctx) error {
	post, err := h.service.GetPostBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// Create handles POST /api/blog.
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var input models.BlogPostInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}
	post, err := h.service.CreatePost(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// Update handles PUT /api/admin/blog/:id.
func (h *BlogHandler) Update(c *fiber.Ctx) error {
	var input models.BlogPostInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}
	post, err := h.service.UpdatePost(c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// Delete handles DELETE /api/admin/blog/:id.
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	found, err := h.service.DeletePost(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
	}
	return c.JSON(fiber.Map{"success": true})
}
