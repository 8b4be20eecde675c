package scheduling

import (
	"log"
	"strconv"
	"strings"
	"time"
)

// Configuration keys as stored in business_config_rows.
const (
	KeyMorningOpen      = "morning_open"
	KeyMorningClose     = "morning_close"
	KeyAfternoonEnabled = "afternoon_enabled"
	KeyAfternoonOpen    = "afternoon_open"
	KeyAfternoonClose   = "afternoon_close"
	KeySlotMinutes      = "slot_minutes"
	KeyFirstSlot        = "first_slot"
	KeyLastSlot         = "last_slot"
	KeyWorkDays         = "work_days"
)

// ConfigDefaults are the fallback values used for every key that is
// missing or malformed in storage. Work days are 0=Sunday..6=Saturday.
var ConfigDefaults = map[string]string{
	KeyMorningOpen:      "08:00",
	KeyMorningClose:     "14:00",
	KeyAfternoonEnabled: "true",
	KeyAfternoonOpen:    "15:30",
	KeyAfternoonClose:   "19:00",
	KeySlotMinutes:      "30",
	KeyFirstSlot:        "08:00",
	KeyLastSlot:         "18:30",
	KeyWorkDays:         "1,2,3,4,5",
}

// BusinessConfig is the resolved shop calendar. It is a fresh value per
// resolution and is never mutated in place.
type BusinessConfig struct {
	MorningOpen      string `json:"morningOpen"`
	MorningClose     string `json:"morningClose"`
	AfternoonEnabled bool   `json:"afternoonEnabled"`
	AfternoonOpen    string `json:"afternoonOpen"`
	AfternoonClose   string `json:"afternoonClose"`
	SlotMinutes      int    `json:"slotMinutes"`
	FirstSlot        string `json:"firstSlot"`
	LastSlot         string `json:"lastSlot"`
	WorkDays         []int  `json:"workDays"`
}

func (c BusinessConfig) IsWorkDay(day time.Weekday) bool {
	for _, d := range c.WorkDays {
		if d == int(day) {
			return true
		}
	}
	return false
}

// ResolveConfig overlays the stored key/value rows onto ConfigDefaults and
// decodes the result. It never fails: an unreadable store or a malformed
// value degrades to the default for that key, so the booking flow keeps
// working even with corrupted configuration.
func ResolveConfig(store ConfigStore) BusinessConfig {
	values := make(map[string]string, len(ConfigDefaults))
	for key, value := range ConfigDefaults {
		values[key] = value
	}

	rows, err := store.ConfigRows()
	if err != nil {
		log.Printf("🔥 Failed to load business config, using defaults: %v", err)
	}
	for key, value := range rows {
		if _, known := values[key]; known {
			values[key] = value
		}
	}

	return BusinessConfig{
		MorningOpen:      timeValue(values, KeyMorningOpen),
		MorningClose:     timeValue(values, KeyMorningClose),
		AfternoonEnabled: values[KeyAfternoonEnabled] == "true",
		AfternoonOpen:    timeValue(values, KeyAfternoonOpen),
		AfternoonClose:   timeValue(values, KeyAfternoonClose),
		SlotMinutes:      slotMinutesValue(values),
		FirstSlot:        timeValue(values, KeyFirstSlot),
		LastSlot:         timeValue(values, KeyLastSlot),
		WorkDays:         workDaysValue(values),
	}
}

func timeValue(values map[string]string, key string) string {
	if ValidClockTime(values[key]) {
		return values[key]
	}
	return ConfigDefaults[key]
}

func slotMinutesValue(values map[string]string) int {
	minutes, err := strconv.Atoi(values[KeySlotMinutes])
	if err != nil {
		minutes = 0
	}
	switch minutes {
	case 30, 60, 120:
		return minutes
	}
	defaultMinutes, _ := strconv.Atoi(ConfigDefaults[KeySlotMinutes])
	return defaultMinutes
}

func workDaysValue(values map[string]string) []int {
	days := parseWorkDays(values[KeyWorkDays])
	if days == nil {
		days = parseWorkDays(ConfigDefaults[KeyWorkDays])
	}
	return days
}

// parseWorkDays decodes a comma-separated weekday list. Returns nil when
// any entry is not an integer in 0..6.
func parseWorkDays(raw string) []int {
	parts := strings.Split(raw, ",")
	days := make([]int, 0, len(parts))
	for _, part := range parts {
		day, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || day < 0 || day > 6 {
			return nil
		}
		days = append(days, day)
	}
	return days
}

// ValidClockTime reports whether value is a zero-padded 24-hour "HH:MM".
func ValidClockTime(value string) bool {
	if len(value) != 5 {
		return false
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}
