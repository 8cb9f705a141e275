package booking

import (
	"testing"

	"courtbook/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testCourt() *domain.Court {
	open, _ := domain.ParseTimeOfDay("08:00")
	close, _ := domain.ParseTimeOfDay("22:00")
	return &domain.Court{
		ID:          1,
		Name:        "court-1",
		Status:      domain.CourtAvailable,
		OpeningHour: open,
		ClosingHour: close,
	}
}

func mustTime(t *testing.T, s string) domain.TimeOfDay {
	t.Helper()
	v, err := domain.ParseTimeOfDay(s)
	assert.NoError(t, err)
	return v
}

func TestValidateStatic_CourtUnavailable(t *testing.T) {
	today := domain.Date("2025-06-01")

	for _, status := range []domain.CourtStatus{domain.CourtMaintenance, domain.CourtClosed} {
		c := testCourt()
		c.Status = status
		err := ValidateStatic(c, "2025-06-02", mustTime(t, "10:00"), mustTime(t, "11:00"), today)
		assert.ErrorIs(t, err, ErrCourtUnavailable)
	}
}

func TestValidateStatic_PastDate(t *testing.T) {
	today := domain.Date("2025-06-01")

	err := ValidateStatic(testCourt(), "2025-05-31", mustTime(t, "10:00"), mustTime(t, "11:00"), today)
	assert.ErrorIs(t, err, ErrPastDate)

	// booking for today is allowed regardless of current clock time
	err = ValidateStatic(testCourt(), "2025-06-01", mustTime(t, "10:00"), mustTime(t, "11:00"), today)
	assert.NoError(t, err)
}

func TestValidateStatic_MalformedDate(t *testing.T) {
	today := domain.Date("2025-06-01")

	// "not-a-date" sorts after any ISO date, so without the syntax
	// check it would sail past the past-date comparison
	for _, bad := range []domain.Date{"not-a-date", "2025-13-01", "20250601", ""} {
		err := ValidateStatic(testCourt(), bad, mustTime(t, "10:00"), mustTime(t, "11:00"), today)
		assert.ErrorIs(t, err, ErrInvalidDate, string(bad))
	}
}

func TestValidateStatic_InvalidInterval(t *testing.T) {
	today := domain.Date("2025-06-01")

	err := ValidateStatic(testCourt(), "2025-06-02", mustTime(t, "11:00"), mustTime(t, "10:00"), today)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	err = ValidateStatic(testCourt(), "2025-06-02", mustTime(t, "10:00"), mustTime(t, "10:00"), today)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestValidateStatic_ClosedDate(t *testing.T) {
	c := testCourt()
	c.ClosedDates = []domain.Date{"2025-07-04"}

	err := ValidateStatic(c, "2025-07-04", mustTime(t, "10:00"), mustTime(t, "11:00"), "2025-06-01")
	assert.ErrorIs(t, err, ErrCourtClosed)

	err = ValidateStatic(c, "2025-07-05", mustTime(t, "10:00"), mustTime(t, "11:00"), "2025-06-01")
	assert.NoError(t, err)
}

func TestValidateStatic_OperatingHoursBounds(t *testing.T) {
	today := domain.Date("2025-06-01")

	err := ValidateStatic(testCourt(), "2025-06-02", mustTime(t, "07:30"), mustTime(t, "08:30"), today)
	assert.ErrorIs(t, err, ErrOutsideHours)

	var hours *HoursError
	assert.ErrorAs(t, err, &hours)
	assert.Equal(t, mustTime(t, "08:00"), hours.Open)
	assert.Equal(t, mustTime(t, "22:00"), hours.Close)

	err = ValidateStatic(testCourt(), "2025-06-02", mustTime(t, "21:30"), mustTime(t, "22:30"), today)
	assert.ErrorIs(t, err, ErrOutsideHours)

	// bounds are inclusive: the full operating window is bookable
	err = ValidateStatic(testCourt(), "2025-06-02", mustTime(t, "08:00"), mustTime(t, "22:00"), today)
	assert.NoError(t, err)
}

func TestValidateStatic_CheckOrder(t *testing.T) {
	// a request failing several rules reports the first one
	c := testCourt()
	c.Status = domain.CourtMaintenance
	c.ClosedDates = []domain.Date{"2025-05-30"}

	err := ValidateStatic(c, "2025-05-30", mustTime(t, "11:00"), mustTime(t, "10:00"), "2025-06-01")
	assert.ErrorIs(t, err, ErrCourtUnavailable)

	c.Status = domain.CourtAvailable
	err = ValidateStatic(c, "2025-05-30", mustTime(t, "11:00"), mustTime(t, "10:00"), "2025-06-01")
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestValidate_SlotConflict(t *testing.T) {
	overlaps := []domain.Reservation{
		{ID: 7, StartTime: mustTime(t, "10:00"), EndTime: mustTime(t, "11:00")},
		{ID: 9, StartTime: mustTime(t, "10:30"), EndTime: mustTime(t, "11:30")},
	}

	err := Validate(testCourt(), "2025-06-02", mustTime(t, "10:30"), mustTime(t, "11:00"), "2025-06-01", overlaps)
	assert.ErrorIs(t, err, ErrSlotConflict)

	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, []int64{7, 9}, conflict.ConflictingIDs)
}

func TestValidate_OkWithNoOverlaps(t *testing.T) {
	err := Validate(testCourt(), "2025-06-02", mustTime(t, "10:00"), mustTime(t, "11:00"), "2025-06-01", nil)
	assert.NoError(t, err)
}
