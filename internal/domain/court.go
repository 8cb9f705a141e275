package domain

import "time"

type CourtStatus string

const (
	CourtAvailable   CourtStatus = "available"
	CourtMaintenance CourtStatus = "maintenance"
	CourtClosed      CourtStatus = "closed"
)

func (s CourtStatus) Valid() bool {
	switch s {
	case CourtAvailable, CourtMaintenance, CourtClosed:
		return true
	}
	return false
}

// Court is a bookable resource. OpeningHour/ClosingHour bound every
// reservation interval (inclusive on both ends), and ClosedDates block
// whole days regardless of hours. Courts are edited only through the
// admin surface; the scheduling engine reads snapshots.
type Court struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name" validate:"required"`
	Status      CourtStatus `json:"status"`
	OpeningHour TimeOfDay   `json:"openingHour"`
	ClosingHour TimeOfDay   `json:"closingHour"`
	ClosedDates []Date      `json:"closedDates,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (c *Court) IsClosedOn(d Date) bool {
	for _, cd := range c.ClosedDates {
		if cd == d {
			return true
		}
	}
	return false
}
