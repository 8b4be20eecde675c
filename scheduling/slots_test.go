package scheduling

import (
	"reflect"
	"testing"
)

func defaultConfig() BusinessConfig {
	return BusinessConfig{
		MorningOpen:      "08:00",
		MorningClose:     "14:00",
		AfternoonEnabled: true,
		AfternoonOpen:    "15:30",
		AfternoonClose:   "19:00",
		SlotMinutes:      30,
		FirstSlot:        "08:00",
		LastSlot:         "18:30",
		WorkDays:         []int{1, 2, 3, 4, 5},
	}
}

func TestGenerateSlotsDefaultConfig(t *testing.T) {
	expected := []string{
		"08:00", "08:30", "09:00", "09:30", "10:00", "10:30",
		"11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
		"15:30", "16:00", "16:30", "17:00", "17:30", "18:00", "18:30",
	}

	slots := GenerateSlots(defaultConfig())
	if !reflect.DeepEqual(slots, expected) {
		t.Errorf("GenerateSlots returned %v, expected %v", slots, expected)
	}
}

func TestGenerateSlotsAfternoonDisabled(t *testing.T) {
	config := defaultConfig()
	config.AfternoonEnabled = false

	slots := GenerateSlots(config)
	if len(slots) != 12 {
		t.Fatalf("expected 12 morning-only slots, got %d: %v", len(slots), slots)
	}
	for _, slot := range slots {
		if ToMinutes(slot) >= ToMinutes(config.MorningClose) {
			t.Errorf("slot %s falls outside the morning shift", slot)
		}
	}
}

func TestGenerateSlotsNarrowedWindow(t *testing.T) {
	config := defaultConfig()
	config.FirstSlot = "10:00"
	config.LastSlot = "16:00"

	expected := []string{
		"10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
		"15:30", "16:00",
	}

	slots := GenerateSlots(config)
	if !reflect.DeepEqual(slots, expected) {
		t.Errorf("GenerateSlots returned %v, expected %v", slots, expected)
	}
}

func TestGenerateSlotsShiftFullyExcluded(t *testing.T) {
	config := defaultConfig()
	config.LastSlot = "13:00"

	slots := GenerateSlots(config)
	for _, slot := range slots {
		if ToMinutes(slot) >= ToMinutes(config.AfternoonOpen) {
			t.Errorf("afternoon slot %s emitted despite lastSlot excluding the shift", slot)
		}
	}
	if len(slots) != 11 {
		t.Errorf("expected 11 slots (08:00..13:00), got %d: %v", len(slots), slots)
	}
}

func TestGenerateSlotsGranularity(t *testing.T) {
	tests := []struct {
		minutes  int
		expected []string
	}{
		{
			minutes: 60,
			expected: []string{
				"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
				"15:30", "16:30", "17:30", "18:30",
			},
		},
		{
			minutes: 120,
			expected: []string{
				"08:00", "10:00", "12:00",
				"15:30", "17:30",
			},
		},
	}

	for _, test := range tests {
		config := defaultConfig()
		config.SlotMinutes = test.minutes

		slots := GenerateSlots(config)
		if !reflect.DeepEqual(slots, test.expected) {
			t.Errorf("GenerateSlots with %d-minute slots returned %v, expected %v", test.minutes, slots, test.expected)
		}
	}
}

func TestGenerateSlotsBounds(t *testing.T) {
	config := defaultConfig()
	first := ToMinutes(config.FirstSlot)
	last := ToMinutes(config.LastSlot)

	for _, slot := range GenerateSlots(config) {
		min := ToMinutes(slot)
		if min < first || min > last {
			t.Errorf("slot %s outside [firstSlot, lastSlot]", slot)
		}
		morning := min >= ToMinutes(config.MorningOpen) && min < ToMinutes(config.MorningClose)
		afternoon := min >= ToMinutes(config.AfternoonOpen) && min < ToMinutes(config.AfternoonClose)
		if morning == afternoon {
			t.Errorf("slot %s does not fall within exactly one shift", slot)
		}
	}
}

func TestTimeHelpers(t *testing.T) {
	tests := []struct {
		clock   string
		minutes int
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"13:30", 810},
		{"15:30", 930},
		{"23:59", 1439},
	}

	for _, test := range tests {
		if got := ToMinutes(test.clock); got != test.minutes {
			t.Errorf("ToMinutes(%q) = %d, expected %d", test.clock, got, test.minutes)
		}
		if got := FromMinutes(test.minutes); got != test.clock {
			t.Errorf("FromMinutes(%d) = %q, expected %q", test.minutes, got, test.clock)
		}
	}
}

func TestValidClockTime(t *testing.T) {
	valid := []string{"00:00", "08:30", "23:59"}
	invalid := []string{"", "8:00", "24:00", "12:60", "noon", "12:0", "12:000"}

	for _, clock := range valid {
		if !ValidClockTime(clock) {
			t.Errorf("ValidClockTime(%q) = false, expected true", clock)
		}
	}
	for _, clock := range invalid {
		if ValidClockTime(clock) {
			t.Errorf("ValidClockTime(%q) = true, expected false", clock)
		}
	}
}
