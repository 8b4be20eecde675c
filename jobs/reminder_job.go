package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/mobauto/workshop-backend/database"
	"github.com/mobauto/workshop-backend/models"
	"github.com/mobauto/workshop-backend/notifications"
)

// SendAppointmentReminders emails every customer with a confirmed
// appointment tomorrow. Scheduled daily from main.
func SendAppointmentReminders() {
	log.Println("Running job: SendAppointmentReminders...")

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var upcoming []models.Appointment
	err := database.DB.
		Preload("Services.Service").
		Where("scheduled_date = ? AND status = ?", tomorrow, models.StatusConfirmed).
		Order("scheduled_time asc").
		Find(&upcoming).Error
	if err != nil {
		log.Printf("Error checking for tomorrow's appointments: %v", err)
		return
	}

	if len(upcoming) == 0 {
		return
	}

	for _, appointment := range upcoming {
		log.Printf("Sending reminder for appointment %s", appointment.Reference)

		emailSubject := "Recordatorio: tu cita en Mobauto es mañana"
		emailBody := fmt.Sprintf(
			"<h1>Recordatorio de cita</h1><p>Hola %s,</p><p>Te recordamos tu cita <b>%s</b> mañana a las <b>%s</b>. Si no puedes asistir, responde a este correo o llámanos para reprogramar.</p>",
			appointment.CustomerName,
			appointment.Reference,
			appointment.ScheduledTime,
		)

		go notifications.SendEmail(appointment.CustomerName, appointment.CustomerEmail, emailSubject, emailBody)
	}
}
