package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mobauto/workshop-backend/database"
	"github.com/mobauto/workshop-backend/models"
	"gorm.io/gorm"
)

func ListServices(c *fiber.Ctx) error {
	var services []models.Service
	err := database.DB.
		Preload("FAQs", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		Where("is_active = ?", true).
		Order("sort_order asc").
		Find(&services).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(services)
}

func GetServiceBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var service models.Service
	err := database.DB.
		Preload("FAQs", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&service).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}
	return c.JSON(service)
}
