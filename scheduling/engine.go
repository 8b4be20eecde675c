package scheduling

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mobauto/workshop-backend/models"
)

const dateLayout = "2006-01-02"

const defaultDurationMinutes = 60

// Engine computes and reserves appointment slots against the resolved
// business calendar. It is stateless; every call reads a fresh
// configuration snapshot.
type Engine struct {
	Config       ConfigStore
	Appointments AppointmentStore
	Services     ServiceStore
}

func NewEngine(config ConfigStore, appointments AppointmentStore, services ServiceStore) *Engine {
	return &Engine{Config: config, Appointments: appointments, Services: services}
}

// ResolveConfig returns the current calendar snapshot.
func (e *Engine) ResolveConfig() BusinessConfig {
	return ResolveConfig(e.Config)
}

// ParseDate validates a "YYYY-MM-DD" value.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, &ValidationError{Msg: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value)}
	}
	return date, nil
}

// AvailableSlots returns the open slots for the given date in ascending
// order: the theoretical slots minus the times already booked by
// non-CANCELLED appointments. A non-work day yields an empty list, not an
// error.
func (e *Engine) AvailableSlots(dateValue string) ([]string, error) {
	date, err := ParseDate(dateValue)
	if err != nil {
		return nil, err
	}

	config := e.ResolveConfig()
	if !config.IsWorkDay(date.Weekday()) {
		return []string{}, nil
	}

	booked, err := e.Appointments.BookedTimes(date)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(booked))
	for _, clock := range booked {
		taken[clock] = true
	}

	open := []string{}
	for _, slot := range GenerateSlots(config) {
		if !taken[slot] {
			open = append(open, slot)
		}
	}
	return open, nil
}

// ReserveRequest carries everything needed to book a slot. UserID is set
// when the booking came from an authenticated customer.
type ReserveRequest struct {
	Date string
	Time string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	VehicleBrand string
	VehicleModel string
	VehicleYear  int
	VehiclePlate string

	ServiceSlugs []string
	Duration     int
	Notes        *string
	UserID       *uuid.UUID
}

// Reserve validates the request against the current calendar, re-checks
// that the slot is still free and creates the PENDING appointment with
// snapshotted service prices. The availability list a client fetched
// earlier may be stale; the live SlotTaken re-check plus the store's
// uniqueness constraint are what actually prevent double-booking.
func (e *Engine) Reserve(req ReserveRequest) (*models.Appointment, error) {
	if req.CustomerName == "" || req.CustomerEmail == "" || req.Date == "" || req.Time == "" {
		return nil, &ValidationError{Msg: "customer name, email, date and time are required"}
	}
	if len(req.ServiceSlugs) == 0 {
		return nil, &ValidationError{Msg: "at least one service is required"}
	}
	if !ValidClockTime(req.Time) {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid time %q, expected HH:MM", req.Time)}
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	config := e.ResolveConfig()
	if !config.IsWorkDay(date.Weekday()) {
		return nil, ErrSlotUnavailable
	}
	if !containsSlot(GenerateSlots(config), req.Time) {
		return nil, ErrSlotUnavailable
	}

	services, err := e.resolveServices(req.ServiceSlugs)
	if err != nil {
		return nil, err
	}

	taken, err := e.Appointments.SlotTaken(date, req.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotUnavailable
	}

	appointment := &models.Appointment{
		UserID:        req.UserID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		VehicleBrand:  req.VehicleBrand,
		VehicleModel:  req.VehicleModel,
		VehicleYear:   req.VehicleYear,
		VehiclePlate:  req.VehiclePlate,
		ScheduledDate: date,
		ScheduledTime: req.Time,
		Status:        models.StatusPending,
		Duration:      durationFor(req.Duration, services),
		Notes:         req.Notes,
	}
	for _, service := range services {
		appointment.Services = append(appointment.Services, models.AppointmentService{
			ServiceID:     service.ID,
			PriceSnapshot: service.PriceMin,
		})
	}

	if err := e.Appointments.Create(appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// resolveServices looks up the requested slugs and fails when any of them
// does not match an active service. Unknown slugs are rejected, never
// dropped.
func (e *Engine) resolveServices(slugs []string) ([]models.Service, error) {
	unique := make([]string, 0, len(slugs))
	seen := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		if !seen[slug] {
			seen[slug] = true
			unique = append(unique, slug)
		}
	}

	services, err := e.Services.BySlugs(unique)
	if err != nil {
		return nil, err
	}
	if len(services) != len(unique) {
		found := make(map[string]bool, len(services))
		for _, service := range services {
			found[service.Slug] = true
		}
		for _, slug := range unique {
			if !found[slug] {
				return nil, &ValidationError{Msg: fmt.Sprintf("unknown service %q", slug)}
			}
		}
	}
	return services, nil
}

// durationFor keeps an explicit duration, otherwise sums the estimated
// minutes of the selected services, otherwise falls back to one hour.
// Duration is informational and does not block adjacent slots.
func durationFor(requested int, services []models.Service) int {
	if requested > 0 {
		return requested
	}
	total := 0
	for _, service := range services {
		if service.EstimatedMinutes != nil {
			total += *service.EstimatedMinutes
		}
	}
	if total == 0 {
		return defaultDurationMinutes
	}
	return total
}

func containsSlot(slots []string, clock string) bool {
	for _, slot := range slots {
		if slot == clock {
			return true
		}
	}
	return false
}
