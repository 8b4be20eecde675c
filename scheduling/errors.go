package scheduling

import "errors"

// ErrSlotUnavailable is returned when the requested date/time cannot be
// booked: the shop is closed, the time is not a bookable slot, or another
// non-cancelled appointment already holds it. Handlers map it to 409.
var ErrSlotUnavailable = errors.New("the selected slot is no longer available")

// ErrNotFound is returned for unknown appointment ids.
var ErrNotFound = errors.New("not found")

// ValidationError marks user-correctable input problems. Handlers map it
// to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
