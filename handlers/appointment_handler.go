package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mobauto/workshop-backend/database"
	"github.com/mobauto/workshop-backend/models"
	"github.com/mobauto/workshop-backend/scheduling"
	"github.com/mobauto/workshop-backend/websocket"
)

func bookingEngine() *scheduling.Engine {
	store := scheduling.NewGormStore(database.DB)
	return scheduling.NewEngine(store, store, store)
}

func schedulingError(c *fiber.Ctx, err error) error {
	if scheduling.IsValidationError(err) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if errors.Is(err, scheduling.ErrSlotUnavailable) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "El horario seleccionado ya no está disponible"})
	}
	if errors.Is(err, scheduling.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}
	log.Printf("🔥 Scheduling error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}

// GetAvailableSlots handles GET /appointments/slots?date=YYYY-MM-DD.
func GetAvailableSlots(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "The \"date\" query parameter is required. Format: YYYY-MM-DD"})
	}

	slots, err := bookingEngine().AvailableSlots(date)
	if err != nil {
		return schedulingError(c, err)
	}

	return c.JSON(fiber.Map{"date": date, "slots": slots})
}

type CreateAppointmentRequest struct {
	CustomerName  string   `json:"customer_name" validate:"required,min=2"`
	CustomerEmail string   `json:"customer_email" validate:"required,email"`
	CustomerPhone string   `json:"customer_phone"`
	VehicleBrand  string   `json:"vehicle_brand"`
	VehicleModel  string   `json:"vehicle_model"`
	VehicleYear   int      `json:"vehicle_year"`
	VehiclePlate  string   `json:"vehicle_plate"`
	Services      []string `json:"services" validate:"required,min=1"`
	ScheduledDate string   `json:"scheduled_date" validate:"required"`
	ScheduledTime string   `json:"scheduled_time" validate:"required"`
	Duration      int      `json:"duration"`
	Notes         *string  `json:"notes"`
}

// CreateAppointment handles POST /appointments. Guests may book; when a
// Bearer token is supplied the appointment is linked to the account.
func CreateAppointment(c *fiber.Ctx) error {
	var req CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	appointment, err := bookingEngine().Reserve(scheduling.ReserveRequest{
		Date:          req.ScheduledDate,
		Time:          req.ScheduledTime,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		VehicleBrand:  req.VehicleBrand,
		VehicleModel:  req.VehicleModel,
		VehicleYear:   req.VehicleYear,
		VehiclePlate:  req.VehiclePlate,
		ServiceSlugs:  req.Services,
		Duration:      req.Duration,
		Notes:         req.Notes,
		UserID:        optionalUserID(c),
	})
	if err != nil {
		return schedulingError(c, err)
	}

	log.Printf("📅 New appointment %s: %s %s", appointment.Reference, req.ScheduledDate, req.ScheduledTime)

	// Populate service details for the response and the admin feed.
	database.DB.Preload("Services.Service").First(appointment, "id = ?", appointment.ID)
	websocket.Notify(appointment)

	return c.Status(fiber.StatusCreated).JSON(appointmentResponse(*appointment))
}

func GetMyAppointments(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var appointments []models.Appointment
	database.DB.
		Preload("Services.Service").
		Where("user_id = ?", userID).
		Order("scheduled_date desc, scheduled_time desc").
		Find(&appointments)

	response := make([]fiber.Map, 0, len(appointments))
	for _, appointment := range appointments {
		response = append(response, appointmentResponse(appointment))
	}
	return c.JSON(response)
}

// appointmentResponse flattens an appointment for the API, with the
// scheduled date as a plain "YYYY-MM-DD" string.
func appointmentResponse(appointment models.Appointment) fiber.Map {
	serviceNames := make([]string, 0, len(appointment.Services))
	for _, item := range appointment.Services {
		serviceNames = append(serviceNames, item.Service.Name)
	}

	return fiber.Map{
		"id":                   appointment.ID,
		"reference":            appointment.Reference,
		"customer_name":        appointment.CustomerName,
		"customer_email":       appointment.CustomerEmail,
		"customer_phone":       appointment.CustomerPhone,
		"vehicle_brand":        appointment.VehicleBrand,
		"vehicle_model":        appointment.VehicleModel,
		"vehicle_year":         appointment.VehicleYear,
		"vehicle_plate":        appointment.VehiclePlate,
		"scheduled_date":       appointment.ScheduledDate.Format("2006-01-02"),
		"scheduled_time":       appointment.ScheduledTime,
		"status":               appointment.Status,
		"duration":             appointment.Duration,
		"notes":                appointment.Notes,
		"confirmation_pdf_url": appointment.ConfirmationPDFURL,
		"services":             serviceNames,
		"created_at":           appointment.CreatedAt,
	}
}
