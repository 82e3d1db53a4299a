package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the session middleware and read by handlers.
const (
	LocalsIsAdmin      = "isAdmin"
	LocalsSessionStore = "session_store"
)

// AdminMiddleware gates admin routes. The admin flag comes from the
// server-side session (resolved once per request by the session
// middleware); nothing client-supplied is consulted.
func AdminMiddleware(c *fiber.Ctx) error {
	isAdmin, ok := c.Locals(LocalsIsAdmin).(bool)
	if !ok || !isAdmin {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized. Admin access required.",
		})
	}
	return c.Next()
}
