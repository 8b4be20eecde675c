package handlers

import (
	"fmt"
	"log"
	"strings"

	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mobauto/workshop-backend/database"
	"github.com/mobauto/workshop-backend/models"
	"github.com/mobauto/workshop-backend/scheduling"
	"github.com/mobauto/workshop-backend/services"
	"github.com/mobauto/workshop-backend/websocket"
	"gorm.io/gorm/clause"
)

// AdminGetAppointments lists every appointment, optionally filtered by
// ?status= and ?date=, newest first.
func AdminGetAppointments(c *fiber.Ctx) error {
	query := database.DB.Preload("Services.Service")

	if status := c.Query("status"); status != "" {
		if !models.ValidStatus(status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown status filter"})
		}
		query = query.Where("status = ?", status)
	}
	if dateValue := c.Query("date"); dateValue != "" {
		date, err := scheduling.ParseDate(dateValue)
		if err != nil {
			return schedulingError(c, err)
		}
		query = query.Where("scheduled_date = ?", date)
	}

	var appointments []models.Appointment
	if err := query.Order("scheduled_date desc, scheduled_time desc").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	response := make([]fiber.Map, 0, len(appointments))
	for _, appointment := range appointments {
		response = append(response, appointmentResponse(appointment))
	}
	return c.JSON(response)
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdminUpdateAppointmentStatus handles PATCH /admin/appointments/:id.
// Any known status can be set from any state; the lifecycle is
// deliberately permissive and admin-driven.
func AdminUpdateAppointmentStatus(c *fiber.Ctx) error {
	appointmentID := c.Params("id")

	var req UpdateAppointmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !models.ValidStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Estado no válido"})
	}

	var appointment models.Appointment
	if err := database.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
	}

	appointment.Status = req.Status
	if err := database.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update appointment"})
	}

	if req.Status == models.StatusConfirmed {
		go services.GenerateConfirmationPDF(appointment.ID)
	}

	return c.JSON(fiber.Map{"id": appointment.ID, "status": appointment.Status})
}

// AdminGetUsers lists registered customers with their appointment and
// vehicle counts.
func AdminGetUsers(c *fiber.Ctx) error {
	type customerRow struct {
		ID                string  `json:"id"`
		Email             string  `json:"email"`
		FirstName         string  `json:"first_name"`
		LastName          string  `json:"last_name"`
		Phone             *string `json:"phone"`
		CreatedAt         string  `json:"created_at"`
		TotalAppointments int64   `json:"total_appointments"`
		TotalVehicles     int64   `json:"total_vehicles"`
	}

	var users []models.User
	if err := database.DB.Where("role = ?", "CUSTOMER").Order("created_at desc").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	response := make([]customerRow, 0, len(users))
	for _, user := range users {
		row := customerRow{
			ID:        user.ID.String(),
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Phone:     user.Phone,
			CreatedAt: user.CreatedAt.Format("2006-01-02"),
		}
		database.DB.Model(&models.Appointment{}).Where("user_id = ?", user.ID).Count(&row.TotalAppointments)
		database.DB.Model(&models.Vehicle{}).Where("owner_id = ?", user.ID).Count(&row.TotalVehicles)
		response = append(response, row)
	}

	return c.JSON(response)
}

// AdminGetConfig returns the raw stored rows plus the resolved calendar,
// so the back-office form can show what is persisted versus effective.
func AdminGetConfig(c *fiber.Ctx) error {
	var rows []models.BusinessConfigRow
	if err := database.DB.Order("key asc").Find(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"rows":     rows,
		"resolved": bookingEngine().ResolveConfig(),
	})
}

type UpdateConfigRequest struct {
	MorningOpen      string `json:"morningOpen" validate:"required"`
	MorningClose     string `json:"morningClose" validate:"required"`
	AfternoonEnabled bool   `json:"afternoonEnabled"`
	AfternoonOpen    string `json:"afternoonOpen" validate:"required"`
	AfternoonClose   string `json:"afternoonClose" validate:"required"`
	SlotMinutes      int    `json:"slotMinutes" validate:"required,oneof=30 60 120"`
	FirstSlot        string `json:"firstSlot" validate:"required"`
	LastSlot         string `json:"lastSlot" validate:"required"`
	WorkDays         []int  `json:"workDays" validate:"required,min=1,dive,gte=0,lte=6"`
}

// AdminUpdateConfig upserts the calendar keys. The resolver is lenient by
// design, so this write path is where bad values get rejected.
func AdminUpdateConfig(c *fiber.Ctx) error {
	var req UpdateConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	for _, clock := range []string{req.MorningOpen, req.MorningClose, req.AfternoonOpen, req.AfternoonClose, req.FirstSlot, req.LastSlot} {
		if !scheduling.ValidClockTime(clock) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("invalid time %q, expected HH:MM", clock)})
		}
	}
	if scheduling.ToMinutes(req.MorningOpen) >= scheduling.ToMinutes(req.MorningClose) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "morningOpen must be before morningClose"})
	}
	if req.AfternoonEnabled && scheduling.ToMinutes(req.AfternoonOpen) >= scheduling.ToMinutes(req.AfternoonClose) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "afternoonOpen must be before afternoonClose"})
	}
	if scheduling.ToMinutes(req.FirstSlot) > scheduling.ToMinutes(req.LastSlot) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "firstSlot must not be after lastSlot"})
	}

	workDays := make([]string, len(req.WorkDays))
	for i, day := range req.WorkDays {
		workDays[i] = fmt.Sprintf("%d", day)
	}

	entries := map[string]string{
		scheduling.KeyMorningOpen:      req.MorningOpen,
		scheduling.KeyMorningClose:     req.MorningClose,
		scheduling.KeyAfternoonEnabled: fmt.Sprintf("%t", req.AfternoonEnabled),
		scheduling.KeyAfternoonOpen:    req.AfternoonOpen,
		scheduling.KeyAfternoonClose:   req.AfternoonClose,
		scheduling.KeySlotMinutes:      fmt.Sprintf("%d", req.SlotMinutes),
		scheduling.KeyFirstSlot:        req.FirstSlot,
		scheduling.KeyLastSlot:         req.LastSlot,
		scheduling.KeyWorkDays:         strings.Join(workDays, ","),
	}

	for key, value := range entries {
		row := models.BusinessConfigRow{Key: key, Value: value}
		err := database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save configuration"})
		}
	}

	return c.JSON(fiber.Map{"message": "Configuration updated successfully"})
}

// ServeAdminWs upgrades an admin connection for the live booking feed.
// The first message must be {"type":"auth","token":"<jwt>"} with an
// ADMIN token.
func ServeAdminWs(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}
	if role, _ := claims["role"].(string); role != "ADMIN" {
		_ = c.WriteJSON(fiber.Map{"error": "Admin access required"})
		c.Close()
		return
	}

	userID, err := uuid.Parse(claims["user_id"].(string))
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid user ID"})
		c.Close()
		return
	}

	client := &websocket.Client{UserID: userID, Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	// Hold the connection open; the hub does all the writing.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseAbnormalClosure) {
				log.Printf("Admin websocket closed for %s: %v", userID, err)
			}
			break
		}
	}
}
