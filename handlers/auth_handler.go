package handlers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"

	"qatardigital.app/configs"
	"qatardigital.app/configs/configslog"
	"qatardigital.app/middlewares"
)

// SessionAdminKey is the server-side session flag marking an admin login.
const SessionAdminKey = "is_admin"

type loginRequest struct {
	Password string `json:"password"`
}

// AuthHandler implements the shared-secret admin login.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) currentSession(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals(middlewares.LocalsSessionStore).(*session.Store)
	if !ok {
		return nil, fiber.ErrInternalServerError
	}
	return store.Get(c)
}

// Login compares the submitted password against the configured secret in
// constant time and marks the session on success.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	cfg := configs.GetConfig()
	if cfg.AdminPassword == "" {
		configslog.Log.Error("Admin login attempted but ADMIN_PASSWORD is not configured")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server configuration error",
		})
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(cfg.AdminPassword)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid password",
		})
	}

	sess, err := h.currentSession(c)
	if err != nil {
		configslog.Log.Error("Failed to open session on login", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Login failed",
		})
	}
	sess.Set(SessionAdminKey, true)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Failed to save session on login", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Login failed",
		})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Login successful"})
}

// Logout destroys the server-side session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.currentSession(c)
	if err != nil {
		configslog.Log.Error("Failed to open session on logout", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Logout failed",
		})
	}
	if err := sess.Destroy(); err != nil {
		configslog.Log.Error("Failed to destroy session on logout", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Logout failed",
		})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Logout successful"})
}

// Status reports whether the current session is an admin session.
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	isAdmin, _ := c.Locals(middlewares.LocalsIsAdmin).(bool)
	return c.JSON(fiber.Map{"isAdmin": isAdmin})
}
