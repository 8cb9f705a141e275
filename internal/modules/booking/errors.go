package booking

import (
	"errors"
	"fmt"

	"courtbook/internal/domain"
)

var (
	ErrNotFound         = errors.New("reservation not found")
	ErrCourtNotFound    = errors.New("court not found")
	ErrForbidden        = errors.New("not allowed to modify this reservation")
	ErrInvalidState     = errors.New("reservation is cancelled")
	ErrInvalidDate      = errors.New("invalid date, want YYYY-MM-DD")
	ErrPastDate         = errors.New("date is in the past")
	ErrInvalidInterval  = errors.New("end time must be after start time")
	ErrCourtUnavailable = errors.New("court is not available")
	ErrCourtClosed      = errors.New("court is closed on this date")
	ErrOutsideHours     = errors.New("outside operating hours")
	ErrSlotConflict     = errors.New("time slot already booked")
	ErrUnavailable      = errors.New("could not commit, try again")
)

// ConflictError carries the reservations that block the requested slot.
// errors.Is(err, ErrSlotConflict) matches it.
type ConflictError struct {
	ConflictingIDs []int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time slot conflicts with reservations %v", e.ConflictingIDs)
}

func (e *ConflictError) Unwrap() error { return ErrSlotConflict }

// HoursError carries the allowed operating window for the court.
// errors.Is(err, ErrOutsideHours) matches it.
type HoursError struct {
	Open  domain.TimeOfDay
	Close domain.TimeOfDay
}

func (e *HoursError) Error() string {
	return fmt.Sprintf("booking must be within operating hours %s - %s", e.Open, e.Close)
}

func (e *HoursError) Unwrap() error { return ErrOutsideHours }
