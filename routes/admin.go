package routes

import (
	"github.com/gofiber/fiber/v2"

	"qatardigital.app/handlers"
	"qatardigital.app/middlewares"
)

// registerAdminRoutes wires every admin-gated route behind the auth
// middleware. No handler below runs without an admin session.
func registerAdminRoutes(app *fiber.App) {
	contactHandler := handlers.NewContactHandler()
	portfolioHandler := handlers.NewPortfolioHandler()
	serviceHandler := handlers.NewServiceHandler()
	testimonialHandler := handlers.NewTestimonialHandler()
	blogHandler := handlers.NewBlogHandler()
	careerHandler := handlers.NewCareerHandler()
	applicationHandler := handlers.NewJobApplicationHandler()
	analyticsHandler := handlers.NewAnalyticsHandler()

	admin := app.Group("/api/admin")
	admin.Use(middlewares.AdminMiddleware)

	admin.Get("/contact", contactHandler.List)

	admin.Put("/portfolio/:id", portfolioHandler.Update)
	admin.Delete("/portfolio/:id", portfolioHandler.Delete)

	admin.Get("/services", serviceHandler.ListAll)
	admin.Post("/services", serviceHandler.Create)
	admin.Put("/services/:id", serviceHandler.Update)
	admin.Delete("/services/:id", serviceHandler.Delete)

	admin.Get("/testimonials", testimonialHandler.List)
	admin.Delete("/testimonials/:id", testimonialHandler.Delete)

	admin.Get("/blog", blogHandler.List)
	admin.Put("/blog/:id", blogHandler.Update)
	admin.Delete("/blog/:id", blogHandler.Delete)

	admin.Get("/careers", careerHandler.ListAll)
	admin.Put("/careers/:id", careerHandler.Update)
	admin.Delete("/careers/:id", careerHandler.Delete)

	admin.Get("/job-applications", applicationHandler.List)
	admin.Patch("/job-applications/:id/status", applicationHandler.UpdateStatus)

	admin.Get("/analytics", analyticsHandler.List)
}
