package scheduling

import (
	"time"

	"github.com/mobauto/workshop-backend/models"
)

// The engine talks to storage through these interfaces so it can be
// exercised against an in-memory fake in tests. The GORM implementations
// live in gorm_store.go.

type ConfigStore interface {
	// ConfigRows returns every stored configuration key/value pair.
	ConfigRows() (map[string]string, error)
}

type AppointmentStore interface {
	// BookedTimes returns the ScheduledTime of every non-CANCELLED
	// appointment on the given date.
	BookedTimes(date time.Time) ([]string, error)

	// SlotTaken reports whether a non-CANCELLED appointment already
	// holds (date, clock).
	SlotTaken(date time.Time, clock string) (bool, error)

	// Create persists a new appointment together with its service rows.
	// Must return ErrSlotUnavailable when the slot uniqueness constraint
	// rejects the row; that constraint, not the SlotTaken pre-check, is
	// the actual double-booking guard.
	Create(appointment *models.Appointment) error
}

type ServiceStore interface {
	// BySlugs returns the active services matching the given slugs.
	BySlugs(slugs []string) ([]models.Service, error)
}
