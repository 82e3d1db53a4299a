package handlers

import (
	"github.com/gofiber/fiber/v2"

	"qatardigital.app/models"
	"qatardigital.app/services"
)

// ServiceHandler serves the service packages. The public listing only ever
// returns active packages; the admin listing returns everything.
type ServiceHandler struct {
	service services.IServiceCatalogService
}

func NewServiceHandler() *ServiceHandler {
	return &ServiceHandler{service: services.NewServiceCatalogService()}
}

// ListActive handles GET /api/services with an optional ?category= filter.
func (h *ServiceHandler) ListActive(c *fiber.Ctx) error {
	list, err := h.service.ListActiveServices(c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListAll handles GET /api/admin/services.
func (h *ServiceHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.service.ListAllServices(c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create handles POST /api/admin/services.
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var input models.ServiceInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}
	created, err := h.service.CreateService(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(created)
}

// Update handles PUT /api/admin/services/:id.
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var input models.ServiceInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}
	updated, err := h.service.UpdateService(c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// Delete handles DELETE /api/admin/services/:id.
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	found, err := h.service.DeleteService(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
	}
	return c.JSON(fiber.Map{"success": true})
}
