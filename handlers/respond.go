package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"qatardigital.app/configs/configslog"
	"qatardigital.app/pkg/apperrors"
)

// respondError maps the application error taxonomy onto HTTP responses.
// Store failures are logged with full detail and surfaced generically.
func respondError(c *fiber.Ctx, err error) error {
	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		body := fiber.Map{"error": "Validation failed"}
		if verr.Details != nil {
			body["details"] = verr.Details
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	case errors.Is(err, apperrors.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Resource already exists"})
	default:
		configslog.Log.Error("Unhandled error in request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}

// respondBadBody is the answer to a payload that is not even valid JSON.
func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
}
