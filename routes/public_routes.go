package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mobauto/workshop-backend/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/config", handlers.GetBusinessConfig)
	api.Get("/services", handlers.ListServices)
	api.Get("/services/:slug", handlers.GetServiceBySlug)
	api.Post("/contact", handlers.SubmitContactForm)
}
