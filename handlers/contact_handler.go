package handlers

import (
	"github.com/gofiber/fiber/v2"

	"qatardigital.app/models"
	"qatardigital.app/services"
)

// ContactHandler serves the public contact form and the admin readout.
type ContactHandler struct {
	service services.IContactService
}

func NewContactHandler() *ContactHandler {
	return &ContactHandler{service: services.NewContactService()}
}

// Create handles POST /api/contact.
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var input models.ContactSubmissionInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}
	submission, err := h.service.CreateSubmission(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(submission)
}

// List handles GET /api/admin/contact.
func (h *ContactHandler) List(c *fiber.Ctx) error {
	submissions, err := h.service.GetAllSubmissions()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(submissions)
}
