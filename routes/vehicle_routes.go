package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mobauto/workshop-backend/handlers"
	"github.com/mobauto/workshop-backend/middleware"
)

func VehicleRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	vehicles := api.Group("/vehicles", middleware.Protected())
	vehicles.Get("", handlers.GetMyVehicles)
	vehicles.Post("", handlers.CreateVehicle)
	vehicles.Delete("/:id", handlers.DeleteVehicle)

	uploads := api.Group("/uploads", middleware.Protected())
	uploads.Get("/signature", handlers.GenerateUploadSignature)
}
