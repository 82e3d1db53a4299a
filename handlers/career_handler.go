package handlers

import (
	"github.com/gofiber/fiber/v2"

	"qatardigital.app/models"
	"qatardigital.app/services"
)

// CareerHandler serves job openings. Public routes only ever see open
// positions; the filter lives server-side.
type CareerHandler struct {
	service services.ICareerService
}

func NewCareerHandler() *CareerHandler {
	return &CareerHandler{service: services.NewCareerService()}
}

// ListOpen handles GET /api/careers.
func (h *CareerHandler) ListOpen(c *fiber.Ctx) error {
	careers, err := h.service.ListOpenCareers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(careers)
}

// GetOpen handles GET /api/careers/:id. Closed positions 404.
func (h *CareerHandler) GetOpen(c *fiber.Ctx) error {
	career, err := h.service.GetOpenCareer(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(career)
}

// Create handles POST /api/careers.
func (h *CareerHandler) Create(c *fiber.Ctx) error {
	var input models.CareerInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}
	career, err := h.service.CreateCareer(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(career)
}

// ListAll handles GET /api/admin/careers, including closed positions.
func (h *CareerHandler) ListAll(c *fiber.Ctx) error {
	careers, err := h.service.ListAllCareers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(careers)
}

// Update handles PUT /api/admin/careers/:id.
func (h *CareerHandler) Update(c *fiber.Ctx) error {
	var input models.CareerInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}
	career, err := h.service.UpdateCareer(c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(career)
}

// Delete handles DELETE /api/admin/careers/:id.
func (h *CareerHandler) Delete(c *fiber.Ctx) error {
	found, err := h.service.DeleteCareer(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
	}
	return c.JSON(fiber.Map{"success": true})
}
