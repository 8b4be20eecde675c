package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mobauto/workshop-backend/database"
	"github.com/mobauto/workshop-backend/models"
)

type CreateVehicleRequest struct {
	Brand    string  `json:"brand" validate:"required"`
	Model    string  `json:"model" validate:"required"`
	Year     int     `json:"year" validate:"required,gte=1950,lte=2100"`
	Plate    string  `json:"plate" validate:"required"`
	Color    *string `json:"color"`
	PhotoURL *string `json:"photo_url"`
}

func GetMyVehicles(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var vehicles []models.Vehicle
	database.DB.Where("owner_id = ?", userID).Order("created_at desc").Find(&vehicles)
	return c.JSON(vehicles)
}

func CreateVehicle(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	vehicle := models.Vehicle{
		OwnerID:  userID,
		Brand:    req.Brand,
		Model:    req.Model,
		Year:     req.Year,
		Plate:    req.Plate,
		Color:    req.Color,
		PhotoURL: req.PhotoURL,
	}
	if err := database.DB.Create(&vehicle).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create vehicle"})
	}

	return c.Status(fiber.StatusCreated).JSON(vehicle)
}

func DeleteVehicle(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	vehicleID := c.Params("id")

	var vehicle models.Vehicle
	if err := database.DB.Where("id = ? AND owner_id = ?", vehicleID, userID).First(&vehicle).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	if err := database.DB.Delete(&vehicle).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete vehicle"})
	}

	return c.JSON(fiber.Map{"message": "Vehicle deleted successfully"})
}
