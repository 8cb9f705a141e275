package booking

import "courtbook/internal/domain"

// ValidateStatic checks a candidate interval against the court's static
// constraints, in a fixed order with deterministic rejections: court
// status, date syntax, past date, interval ordering, closed dates,
// operating hours. The engine runs this before issuing the overlap
// query, so invalid requests never hit the store.
func ValidateStatic(court *domain.Court, date domain.Date, start, end domain.TimeOfDay, today domain.Date) error {
	if court.Status != domain.CourtAvailable {
		return ErrCourtUnavailable
	}
	// Dates compare lexicographically, so a malformed one must be
	// rejected before the past-date check can mean anything.
	if _, err := domain.ParseDate(string(date)); err != nil {
		return ErrInvalidDate
	}
	if date.Before(today) {
		return ErrPastDate
	}
	if start >= end {
		return ErrInvalidInterval
	}
	if court.IsClosedOn(date) {
		return ErrCourtClosed
	}
	// Bounds are inclusive: ending exactly at closing time is allowed.
	if start < court.OpeningHour || end > court.ClosingHour {
		return &HoursError{Open: court.OpeningHour, Close: court.ClosingHour}
	}
	return nil
}

// Validate runs the full rule set including the conflict check against
// the overlapping reservations the caller already fetched. Pure: no
// clock, no store access.
func Validate(court *domain.Court, date domain.Date, start, end domain.TimeOfDay, today domain.Date, overlaps []domain.Reservation) error {
	if err := ValidateStatic(court, date, start, end, today); err != nil {
		return err
	}
	if len(overlaps) > 0 {
		return conflictError(overlaps)
	}
	return nil
}

func conflictError(overlaps []domain.Reservation) error {
	ids := make([]int64, 0, len(overlaps))
	for _, r := range overlaps {
		ids = append(ids, r.ID)
	}
	return &ConflictError{ConflictingIDs: ids}
}
