package handlers

import (
	"github.com/gofiber/fiber/v2"

	"qatardigital.app/models"
	"qatardigital.app/services"
)

// TestimonialHandler serves client testimonials.
type TestimonialHandler struct {
	service services.ITestimonialService
}

func NewTestimonialHandler() *TestimonialHandler {
	return &TestimonialHandler{service: services.NewTestimonialService()}
}

// List handles GET /api/testimonials with an optional ?projectType= filter.
func (h *TestimonialHandler) List(c *fiber.Ctx) error {
	testimonials, err := h.service.ListTestimonials(c.Query("projectType"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(testimonials)
}

// Create handles POST /api/testimonials.
func (h *TestimonialHandler) Create(c *fiber.Ctx) error {
	var input models.TestimonialInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}
	testimonial, err := h.service.CreateTestimonial(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(testimonial)
}

// Delete handles DELETE /api/admin/testimonials/:id.
func (h *TestimonialHandler) Delete(c *fiber.Ctx) error {
	found, err := h.service.DeleteTestimonial(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
	}
	return c.JSON(fiber.Map{"success": true})
}
