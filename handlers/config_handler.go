package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetBusinessConfig handles GET /config. Public: the booking page needs
// the calendar to render its date/time picker.
func GetBusinessConfig(c *fiber.Ctx) error {
	return c.JSON(bookingEngine().ResolveConfig())
}
