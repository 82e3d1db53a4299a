package routes

import (
	"github.com/gofiber/fiber/v2"

	"qatardigital.app/handlers"
)

// registerAuthRoutes wires the admin login lifecycle. These live under
// /api/admin but are deliberately outside the auth gate: login and status
// must work for anonymous callers.
func registerAuthRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler()

	app.Post("/api/admin/login", authHandler.Login)
	app.Post("/api/admin/logout", authHandler.Logout)
	app.Get("/api/admin/status", authHandler.Status)
}
