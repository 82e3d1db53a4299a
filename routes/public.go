package routes

import (
	"github.com/gofiber/fiber/v2"

	"qatardigital.app/handlers"
)

// registerPublicRoutes wires everything anonymous visitors may call.
func registerPublicRoutes(app *fiber.App) {
	contactHandler := handlers.NewContactHandler()
	portfolioHandler := handlers.NewPortfolioHandler()
	serviceHandler := handlers.NewServiceHandler()
	testimonialHandler := handlers.NewTestimonialHandler()
	blogHandler := handlers.NewBlogHandler()
	careerHandler := handlers.NewCareerHandler()
	applicationHandler := handlers.NewJobApplicationHandler()
	analyticsHandler := handlers.NewAnalyticsHandler()

	api := app.Group("/api")

	api.Post("/contact", contactHandler.Create)

	api.Get("/portfolio", portfolioHandler.List)
	api.Get("/portfolio/:id", portfolioHandler.Get)
	api.Post("/portfolio", portfolioHandler.Create)

	api.Get("/services", serviceHandler.ListActive)

	api.Get("/testimonials", testimonialHandler.List)
	api.Post("/testimonials", testimonialHandler.Create)

	api.Get("/blog", blogHandler.List)
	api.Get("/blog/:slug", blogHandler.GetBySlug)
	api.Post("/blog", blogHandler.Create)

	api.Get("/careers", careerHandler.ListOpen)
	api.Get("/careers/:id", careerHandler.GetOpen)
	api.Post("/careers", careerHandler.Create)

	api.Post("/job-applications", applicationHandler.Create)

	// Fire-and-forget counters; always answer success to the caller.
	api.Post("/analytics/pageview", analyticsHandler.PageView)
	api.Post("/analytics/whatsapp", analyticsHandler.WhatsappClick)
	api.Post("/analytics/contact", analyticsHandler.ContactSubmission)
}
