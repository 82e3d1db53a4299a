package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"qatardigital.app/configs/configslog"
	"qatardigital.app/services"
)

// AnalyticsHandler serves the fire-and-forget counter endpoints and the
// admin readout. Tracking failures never fail the caller's primary action:
// they are logged and swallowed.
type AnalyticsHandler struct {
	service services.IAnalyticsService
}

func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{service: services.NewAnalyticsService()}
}

func (h *AnalyticsHandler) track(c *fiber.Ctx, name string, fn func() error) error {
	if err := fn(); err != nil {
		configslog.Log.Warn("Failed to record analytics event",
			zap.String("event", name),
			zap.Error(err),
		)
	}
	return c.JSON(fiber.Map{"success": true})
}

// PageView handles POST /api/analytics/pageview.
func (h *AnalyticsHandler) PageView(c *fiber.Ctx) error {
	return h.track(c, "pageview", h.service.TrackPageView)
}

// WhatsappClick handles POST /api/analytics/whatsapp.
func (h *AnalyticsHandler) WhatsappClick(c *fiber.Ctx) error {
	return h.track(c, "whatsapp", h.service.TrackWhatsappClick)
}

// ContactSubmission handles POST /api/analytics/contact.
func (h *AnalyticsHandler) ContactSubmission(c *fiber.Ctx) error {
	return h.track(c, "contact", h.service.TrackContactSubmission)
}

// List handles GET /api/admin/analytics.
func (h *AnalyticsHandler) List(c *fiber.Ctx) error {
	rows, err := h.service.GetAnalytics()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}
