package scheduling

import (
	"errors"
	"reflect"
	"testing"
)

type fakeConfigStore struct {
	rows map[string]string
	err  error
}

func (s *fakeConfigStore) ConfigRows() (map[string]string, error) {
	return s.rows, s.err
}

func TestResolveConfigDefaults(t *testing.T) {
	config := ResolveConfig(&fakeConfigStore{})

	if !reflect.DeepEqual(config, defaultConfig()) {
		t.Errorf("ResolveConfig with empty store = %+v, expected defaults %+v", config, defaultConfig())
	}
}

func TestResolveConfigOverlay(t *testing.T) {
	store := &fakeConfigStore{rows: map[string]string{
		"morning_open":      "09:00",
		"afternoon_enabled": "false",
		"slot_minutes":      "60",
		"work_days":         "1,3,5",
		"last_slot":         "13:00",
	}}

	config := ResolveConfig(store)

	if config.MorningOpen != "09:00" {
		t.Errorf("MorningOpen = %q, expected overlay value 09:00", config.MorningOpen)
	}
	if config.AfternoonEnabled {
		t.Error("AfternoonEnabled = true, expected false")
	}
	if config.SlotMinutes != 60 {
		t.Errorf("SlotMinutes = %d, expected 60", config.SlotMinutes)
	}
	if !reflect.DeepEqual(config.WorkDays, []int{1, 3, 5}) {
		t.Errorf("WorkDays = %v, expected [1 3 5]", config.WorkDays)
	}
	if config.LastSlot != "13:00" {
		t.Errorf("LastSlot = %q, expected 13:00", config.LastSlot)
	}
	// Untouched keys keep their defaults.
	if config.MorningClose != "14:00" {
		t.Errorf("MorningClose = %q, expected default 14:00", config.MorningClose)
	}
}

func TestResolveConfigMalformedValuesFallBack(t *testing.T) {
	store := &fakeConfigStore{rows: map[string]string{
		"morning_open": "25:99",
		"first_slot":   "8:00",
		"slot_minutes": "45",
		"work_days":    "1,2,x",
		"last_slot":    "not a time",
	}}

	config := ResolveConfig(store)

	if config.MorningOpen != "08:00" {
		t.Errorf("MorningOpen = %q, expected default for malformed value", config.MorningOpen)
	}
	if config.FirstSlot != "08:00" {
		t.Errorf("FirstSlot = %q, expected default for unpadded value", config.FirstSlot)
	}
	if config.SlotMinutes != 30 {
		t.Errorf("SlotMinutes = %d, expected default 30 for unsupported granularity", config.SlotMinutes)
	}
	if !reflect.DeepEqual(config.WorkDays, []int{1, 2, 3, 4, 5}) {
		t.Errorf("WorkDays = %v, expected defaults for malformed list", config.WorkDays)
	}
	if config.LastSlot != "18:30" {
		t.Errorf("LastSlot = %q, expected default 18:30", config.LastSlot)
	}
}

func TestResolveConfigBooleanDecoding(t *testing.T) {
	// Only the literal string "true" enables the afternoon shift.
	for raw, expected := range map[string]bool{"true": true, "True": false, "yes": false, "1": false, "": false} {
		store := &fakeConfigStore{rows: map[string]string{"afternoon_enabled": raw}}
		if got := ResolveConfig(store).AfternoonEnabled; got != expected {
			t.Errorf("afternoon_enabled=%q decoded to %t, expected %t", raw, got, expected)
		}
	}
}

func TestResolveConfigIgnoresUnknownKeys(t *testing.T) {
	store := &fakeConfigStore{rows: map[string]string{
		"mystery_key": "whatever",
	}}

	config := ResolveConfig(store)
	if !reflect.DeepEqual(config, defaultConfig()) {
		t.Errorf("unknown key altered the config: %+v", config)
	}
}

func TestResolveConfigStoreFailure(t *testing.T) {
	store := &fakeConfigStore{err: errors.New("connection refused")}

	config := ResolveConfig(store)
	if !reflect.DeepEqual(config, defaultConfig()) {
		t.Errorf("ResolveConfig after store failure = %+v, expected defaults", config)
	}
}
