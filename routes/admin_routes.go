package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/mobauto/workshop-backend/handlers"
	"github.com/mobauto/workshop-backend/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/appointments", handlers.AdminGetAppointments)
	admin.Patch("/appointments/:id", handlers.AdminUpdateAppointmentStatus)

	admin.Get("/users", handlers.AdminGetUsers)

	admin.Get("/config", handlers.AdminGetConfig)
	admin.Post("/config", handlers.AdminUpdateConfig)

	// Live booking feed. Kept outside the /admin prefix so the JWT
	// middleware does not intercept the upgrade; the handler checks the
	// ADMIN token in the first websocket message instead.
	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws/admin", websocket.New(handlers.ServeAdminWs))
}
