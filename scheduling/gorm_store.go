package scheduling

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mobauto/workshop-backend/models"
	"github.com/mobauto/workshop-backend/utils"
)

// GormStore backs the engine with the shop database. It satisfies
// ConfigStore, AppointmentStore and ServiceStore.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) ConfigRows() (map[string]string, error) {
	var rows []models.BusinessConfigRow
	if err := s.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}
	return values, nil
}

func (s *GormStore) BookedTimes(date time.Time) ([]string, error) {
	var times []string
	err := s.DB.Model(&models.Appointment{}).
		Where("scheduled_date = ? AND status <> ?", date, models.StatusCancelled).
		Pluck("scheduled_time", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

func (s *GormStore) SlotTaken(date time.Time, clock string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Appointment{}).
		Where("scheduled_date = ? AND scheduled_time = ? AND status <> ?", date, clock, models.StatusCancelled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) Create(appointment *models.Appointment) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		reference, err := utils.GenerateUniqueReference(tx)
		if err != nil {
			return err
		}
		appointment.Reference = reference
		return tx.Create(appointment).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// The partial unique index on (scheduled_date, scheduled_time)
		// rejected a concurrent booking that slipped past the pre-check.
		return ErrSlotUnavailable
	}
	return err
}

func (s *GormStore) BySlugs(slugs []string) ([]models.Service, error) {
	var services []models.Service
	err := s.DB.Where("slug IN ? AND is_active = ?", slugs, true).Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}
