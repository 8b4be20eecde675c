package scheduling

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mobauto/workshop-backend/models"
)

// In-memory stores backing the engine in tests.

type memStore struct {
	config       map[string]string
	appointments []*models.Appointment
	services     []models.Service
	nextRef      int
}

func (s *memStore) ConfigRows() (map[string]string, error) {
	return s.config, nil
}

func (s *memStore) BookedTimes(date time.Time) ([]string, error) {
	times := []string{}
	for _, appointment := range s.appointments {
		if appointment.ScheduledDate.Equal(date) && appointment.Status != models.StatusCancelled {
			times = append(times, appointment.ScheduledTime)
		}
	}
	return times, nil
}

func (s *memStore) SlotTaken(date time.Time, clock string) (bool, error) {
	for _, appointment := range s.appointments {
		if appointment.ScheduledDate.Equal(date) && appointment.ScheduledTime == clock && appointment.Status != models.StatusCancelled {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) Create(appointment *models.Appointment) error {
	// Mirror the database's partial unique index.
	taken, _ := s.SlotTaken(appointment.ScheduledDate, appointment.ScheduledTime)
	if taken {
		return ErrSlotUnavailable
	}
	s.nextRef++
	appointment.ID = uuid.New()
	appointment.Reference = fmt.Sprintf("MB-TEST%04d", s.nextRef)
	s.appointments = append(s.appointments, appointment)
	return nil
}

func (s *memStore) BySlugs(slugs []string) ([]models.Service, error) {
	var matched []models.Service
	for _, service := range s.services {
		for _, slug := range slugs {
			if service.Slug == slug && service.IsActive {
				matched = append(matched, service)
			}
		}
	}
	return matched, nil
}

func price(v float64) *float64 { return &v }

func minutes(v int) *int { return &v }

func newTestEngine() (*Engine, *memStore) {
	store := &memStore{
		config: map[string]string{},
		services: []models.Service{
			{ID: uuid.New(), Slug: "mantenimiento", Name: "Mantenimiento Preventivo", PriceMin: price(49), EstimatedMinutes: minutes(60), IsActive: true},
			{ID: uuid.New(), Slug: "pre-itv", Name: "Pre-ITV", PriceMin: price(39), EstimatedMinutes: minutes(30), IsActive: true},
			{ID: uuid.New(), Slug: "chapa-pintura", Name: "Chapa y Pintura", IsActive: true},
		},
	}
	return NewEngine(store, store, store), store
}

func validRequest() ReserveRequest {
	return ReserveRequest{
		Date:          "2026-03-16", // a Monday
		Time:          "10:00",
		CustomerName:  "Laura Fernández",
		CustomerEmail: "laura@example.com",
		CustomerPhone: "600123123",
		VehicleBrand:  "Seat",
		VehicleModel:  "León",
		VehicleYear:   2019,
		VehiclePlate:  "1234-KLM",
		ServiceSlugs:  []string{"mantenimiento"},
	}
}

func TestAvailableSlotsNonWorkDay(t *testing.T) {
	engine, _ := newTestEngine()

	slots, err := engine.AvailableSlots("2026-03-14") // a Saturday
	if err != nil {
		t.Fatalf("AvailableSlots returned error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots on a non-work day, got %v", slots)
	}
}

func TestAvailableSlotsDefaultCalendar(t *testing.T) {
	engine, _ := newTestEngine()

	slots, err := engine.AvailableSlots("2026-03-16")
	if err != nil {
		t.Fatalf("AvailableSlots returned error: %v", err)
	}
	if len(slots) != 19 {
		t.Fatalf("expected 19 open slots with the default calendar, got %d: %v", len(slots), slots)
	}
	if slots[0] != "08:00" || slots[len(slots)-1] != "18:30" {
		t.Errorf("slot bounds = %s..%s, expected 08:00..18:30", slots[0], slots[len(slots)-1])
	}
}

func TestAvailableSlotsInvalidDate(t *testing.T) {
	engine, _ := newTestEngine()

	_, err := engine.AvailableSlots("16/03/2026")
	if !IsValidationError(err) {
		t.Errorf("expected ValidationError for malformed date, got %v", err)
	}
}

func TestAvailableSlotsIdempotent(t *testing.T) {
	engine, _ := newTestEngine()

	first, err := engine.AvailableSlots("2026-03-16")
	if err != nil {
		t.Fatalf("AvailableSlots returned error: %v", err)
	}
	second, err := engine.AvailableSlots("2026-03-16")
	if err != nil {
		t.Fatalf("AvailableSlots returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls diverged: %v vs %v", first, second)
	}
}

func TestReserveRemovesSlotUntilCancelled(t *testing.T) {
	engine, store := newTestEngine()

	appointment, err := engine.Reserve(validRequest())
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if appointment.Status != models.StatusPending {
		t.Errorf("new appointment status = %s, expected PENDING", appointment.Status)
	}

	slots, _ := engine.AvailableSlots("2026-03-16")
	for _, slot := range slots {
		if slot == "10:00" {
			t.Fatal("booked slot 10:00 still listed as available")
		}
	}
	if len(slots) != 18 {
		t.Errorf("expected 18 open slots after one booking, got %d", len(slots))
	}

	// Cancelling frees the slot again.
	store.appointments[0].Status = models.StatusCancelled
	slots, _ = engine.AvailableSlots("2026-03-16")
	found := false
	for _, slot := range slots {
		if slot == "10:00" {
			found = true
		}
	}
	if !found {
		t.Error("slot 10:00 did not reappear after cancellation")
	}
}

func TestReserveDoubleBooking(t *testing.T) {
	engine, _ := newTestEngine()

	if _, err := engine.Reserve(validRequest()); err != nil {
		t.Fatalf("first Reserve failed: %v", err)
	}

	second := validRequest()
	second.CustomerName = "Miguel Ortega"
	second.CustomerEmail = "miguel@example.com"
	_, err := engine.Reserve(second)
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("second Reserve for the same slot returned %v, expected ErrSlotUnavailable", err)
	}
}

func TestReserveRaceLostAtCreate(t *testing.T) {
	// Even if the pre-check passes, the store-level uniqueness guard must
	// surface as ErrSlotUnavailable.
	engine, store := newTestEngine()

	req := validRequest()
	date, _ := ParseDate(req.Date)
	store.appointments = append(store.appointments, &models.Appointment{
		ScheduledDate: date,
		ScheduledTime: req.Time,
		Status:        models.StatusPending,
	})

	_, err := engine.Reserve(req)
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("Reserve returned %v, expected ErrSlotUnavailable", err)
	}
}

func TestReserveValidation(t *testing.T) {
	engine, _ := newTestEngine()

	tests := []struct {
		name   string
		mutate func(*ReserveRequest)
	}{
		{"missing name", func(r *ReserveRequest) { r.CustomerName = "" }},
		{"missing email", func(r *ReserveRequest) { r.CustomerEmail = "" }},
		{"missing date", func(r *ReserveRequest) { r.Date = "" }},
		{"missing time", func(r *ReserveRequest) { r.Time = "" }},
		{"no services", func(r *ReserveRequest) { r.ServiceSlugs = nil }},
		{"malformed date", func(r *ReserveRequest) { r.Date = "March 16" }},
		{"malformed time", func(r *ReserveRequest) { r.Time = "10am" }},
		{"unknown service", func(r *ReserveRequest) { r.ServiceSlugs = []string{"mantenimiento", "nonexistent"} }},
	}

	for _, test := range tests {
		req := validRequest()
		test.mutate(&req)
		_, err := engine.Reserve(req)
		if !IsValidationError(err) {
			t.Errorf("%s: Reserve returned %v, expected ValidationError", test.name, err)
		}
	}
}

func TestReserveClosedDayAndOffGridTimes(t *testing.T) {
	engine, _ := newTestEngine()

	saturday := validRequest()
	saturday.Date = "2026-03-14"
	if _, err := engine.Reserve(saturday); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("Saturday booking returned %v, expected ErrSlotUnavailable", err)
	}

	offGrid := validRequest()
	offGrid.Time = "10:15" // valid clock time, not a generated slot
	if _, err := engine.Reserve(offGrid); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("off-grid time returned %v, expected ErrSlotUnavailable", err)
	}

	lunch := validRequest()
	lunch.Time = "14:30" // between shifts
	if _, err := engine.Reserve(lunch); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("between-shifts time returned %v, expected ErrSlotUnavailable", err)
	}
}

func TestReserveSnapshotsServices(t *testing.T) {
	engine, _ := newTestEngine()

	req := validRequest()
	req.ServiceSlugs = []string{"mantenimiento", "pre-itv", "mantenimiento"} // duplicate collapses

	appointment, err := engine.Reserve(req)
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}

	if len(appointment.Services) != 2 {
		t.Fatalf("expected 2 service rows, got %d", len(appointment.Services))
	}
	snapshots := map[string]bool{}
	for _, item := range appointment.Services {
		if item.PriceSnapshot != nil {
			snapshots[fmt.Sprintf("%.0f", *item.PriceSnapshot)] = true
		}
	}
	if !snapshots["49"] || !snapshots["39"] {
		t.Errorf("price snapshots missing, got %v", snapshots)
	}

	// Duration defaults to the summed estimates when not supplied.
	if appointment.Duration != 90 {
		t.Errorf("Duration = %d, expected 90 (60+30)", appointment.Duration)
	}
}

func TestReserveDurationFallback(t *testing.T) {
	engine, _ := newTestEngine()

	req := validRequest()
	req.ServiceSlugs = []string{"chapa-pintura"} // no estimate on record
	appointment, err := engine.Reserve(req)
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if appointment.Duration != 60 {
		t.Errorf("Duration = %d, expected 60 fallback", appointment.Duration)
	}

	explicit := validRequest()
	explicit.Time = "11:00"
	explicit.Duration = 120
	appointment, err = engine.Reserve(explicit)
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if appointment.Duration != 120 {
		t.Errorf("Duration = %d, expected explicit 120", appointment.Duration)
	}
}

func TestReserveRespectsConfiguredCalendar(t *testing.T) {
	engine, store := newTestEngine()
	store.config["work_days"] = "6" // Saturdays only

	monday := validRequest()
	if _, err := engine.Reserve(monday); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("Monday booking with Saturday-only calendar returned %v, expected ErrSlotUnavailable", err)
	}

	saturday := validRequest()
	saturday.Date = "2026-03-14"
	if _, err := engine.Reserve(saturday); err != nil {
		t.Errorf("Saturday booking with Saturday-only calendar failed: %v", err)
	}
}
