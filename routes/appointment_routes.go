package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mobauto/workshop-backend/handlers"
	"github.com/mobauto/workshop-backend/middleware"
)

func AppointmentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	appointments := api.Group("/appointments")
	appointments.Get("/slots", handlers.GetAvailableSlots)
	// Guests can book; the handler links the account when a token is sent.
	appointments.Post("", handlers.CreateAppointment)
	appointments.Get("/my", middleware.Protected(), handlers.GetMyAppointments)
}
