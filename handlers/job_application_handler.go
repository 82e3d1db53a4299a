package handlers

import (
	"github.com/gofiber/fiber/v2"

	"qatardigital.app/models"
	"qatardigital.app/services"
)

// JobApplicationHandler serves candidate submissions.
type JobApplicationHandler struct {
	service services.IJobApplicationService
}

func NewJobApplicationHandler() *JobApplicationHandler {
	return &JobApplicationHandler{service: services.NewJobApplicationService()}
}

// Create handles POST /api/job-applications. Status is forced to pending;
// any client-supplied value is ignored.
func (h *JobApplicationHandler) Create(c *fiber.Ctx) error {
	var input models.JobApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}
	application, err := h.service.CreateApplication(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(application)
}

// List handles GET /api/admin/job-applications with an optional ?careerId= filter.
func (h *JobApplicationHandler) List(c *fiber.Ctx) error {
	applications, err := h.service.ListApplications(c.Query("careerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(applications)
}

// UpdateStatus handles PATCH /api/admin/job-applications/:id/status, the
// only mutation an application admits.
func (h *JobApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	var input models.ApplicationStatusInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}
	application, err := h.service.UpdateApplicationStatus(c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(application)
}
