package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"qatardigital.app/configs/configslog"
	"qatardigital.app/configs/configssession"
	"qatardigital.app/handlers"
	"qatardigital.app/middlewares"
)

// SetupRoutes wires the global middleware and every route group.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	// The session identifier leaves the server encrypted and authenticated
	// (AES-GCM keyed from SESSION_SECRET); a tampered cookie decrypts to
	// nothing and the request proceeds anonymously.
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: configssession.CookieKey(),
	}))
	app.Use(initializeSession())

	registerAuthRoutes(app)
	registerPublicRoutes(app)
	registerAdminRoutes(app)

	app.Use(notFoundHandler)
}

// initializeSession builds the session store once and resolves the admin
// flag per request, so the auth gate and handlers only consult locals.
func initializeSession() fiber.Handler {
	sessionStore := configssession.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals(middlewares.LocalsSessionStore, sessionStore)
		sess, err := sessionStore.Get(c)
		if err != nil {
			configslog.Log.Warn("Failed to open session", zap.Error(err))
			return c.Next()
		}
		if isAdmin, ok := sess.Get(handlers.SessionAdminKey).(bool); ok {
			c.Locals(middlewares.LocalsIsAdmin, isAdmin)
		}
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
}
