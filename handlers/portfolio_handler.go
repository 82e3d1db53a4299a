package handlers

import (
	"github.com/gofiber/fiber/v2"

	"qatardigital.app/models"
	"qatardigital.app/services"
)

// PortfolioHandler serves the portfolio gallery and its admin mutations.
type PortfolioHandler struct {
	service services.IPortfolioService
}

func NewPortfolioHandler() *PortfolioHandler {
	return &PortfolioHandler{service: services.NewPortfolioService()}
}

// List handles GET /api/portfolio with an optional ?type= filter.
func (h *PortfolioHandler) List(c *fiber.Ctx) error {
	projects, err := h.service.ListProjects(c.Query("type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(projects)
}

// Get handles GET /api/portfolio/:id.
func (h *PortfolioHandler) Get(c *fiber.Ctx) error {
	project, err := h.service.GetProject(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

// Create handles POST /api/portfolio.
func (h *PortfolioHandler) Create(c *fiber.Ctx) error {
	var input models.PortfolioProjectInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}
	project, err := h.service.CreateProject(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

// Update handles PUT /api/admin/portfolio/:id.
func (h *PortfolioHandler) Update(c *fiber.Ctx) error {
	var input models.PortfolioProjectInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}
	project, err := h.service.UpdateProject(c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

// Delete handles DELETE /api/admin/portfolio/:id.
func (h *PortfolioHandler) Delete(c *fiber.Ctx) error {
	found, err := h.service.DeleteProject(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
	}
	return c.JSON(fiber.Map{"success": true})
}
