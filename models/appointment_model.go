package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment statuses. PENDING is the only state a booking can be
// created in; everything else is set by an admin.
const (
	StatusPending    = "PENDING"
	StatusConfirmed  = "CONFIRMED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
	StatusNoShow     = "NO_SHOW"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

type Appointment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Reference string     `gorm:"size:12;unique" json:"reference"`
	UserID    *uuid.UUID `json:"user_id"`

	CustomerName  string `gorm:"size:255;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:255;not null" json:"customer_email"`
	CustomerPhone string `gorm:"size:30" json:"customer_phone"`

	VehicleBrand string `gorm:"size:100" json:"vehicle_brand"`
	VehicleModel string `gorm:"size:100" json:"vehicle_model"`
	VehicleYear  int    `json:"vehicle_year"`
	VehiclePlate string `gorm:"size:20" json:"vehicle_plate"`

	// ScheduledDate is date-only; ScheduledTime is an "HH:MM" value
	// produced by the slot generator. A partial unique index on the pair
	// (excluding CANCELLED rows) is created in database.Migrate.
	ScheduledDate time.Time `gorm:"type:date;not null" json:"-"`
	ScheduledTime string    `gorm:"size:5;not null" json:"scheduled_time"`

	Status   string  `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	Duration int     `gorm:"not null;default:60" json:"duration"`
	Notes    *string `gorm:"type:text" json:"notes"`

	ConfirmationPDFURL *string `gorm:"size:255" json:"confirmation_pdf_url"`

	Services []AppointmentService `gorm:"foreignkey:AppointmentID" json:"services,omitempty"`
	User     *User                `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentService links an appointment to a catalog service and
// snapshots the price at booking time.
type AppointmentService struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID `gorm:"not null" json:"-"`
	ServiceID     uuid.UUID `gorm:"not null" json:"service_id"`
	PriceSnapshot *float64  `gorm:"type:numeric(10,2)" json:"price_snapshot"`

	Service Service `gorm:"foreignkey:ServiceID" json:"service,omitempty"`
}
