package scheduling

import "fmt"

// ToMinutes converts an "HH:MM" value to minutes since midnight.
func ToMinutes(clock string) int {
	var h, m int
	fmt.Sscanf(clock, "%d:%d", &h, &m)
	return h*60 + m
}

// FromMinutes converts minutes since midnight back to "HH:MM".
func FromMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// GenerateSlots produces every theoretical slot for the given calendar,
// in ascending order. The morning shift runs from max(firstSlot,
// morningOpen) up to (exclusive) morningClose; the afternoon shift, when
// enabled, from max(afternoonOpen, firstSlot) up to afternoonClose. Both
// shifts are further capped inclusively by lastSlot; a window that fully
// excludes a shift simply contributes no slots.
func GenerateSlots(config BusinessConfig) []string {
	slots := []string{}

	firstMin := ToMinutes(config.FirstSlot)
	lastMin := ToMinutes(config.LastSlot)

	morningStart := max(firstMin, ToMinutes(config.MorningOpen))
	morningClose := ToMinutes(config.MorningClose)
	for min := morningStart; min < morningClose && min <= lastMin; min += config.SlotMinutes {
		slots = append(slots, FromMinutes(min))
	}

	if config.AfternoonEnabled {
		afternoonStart := max(ToMinutes(config.AfternoonOpen), firstMin)
		afternoonClose := ToMinutes(config.AfternoonClose)
		for min := afternoonStart; min < afternoonClose && min <= lastMin; min += config.SlotMinutes {
			slots = append(slots, FromMinutes(min))
		}
	}

	return slots
}
