package domain

import "time"

type ReservationStatus string

const (
	ReservationBooked    ReservationStatus = "booked"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation is a single booked interval [StartTime, EndTime) on a court.
// CourtID is a non-owning reference: the court may be edited or deleted
// independently. Reschedule rewrites Date/StartTime/EndTime in place and
// never creates a second identity. Cancelled is terminal.
type Reservation struct {
	ID          int64             `json:"id"`
	CourtID     int64             `json:"court_id"`
	OwnerID     int64             `json:"owner_id"`
	Date        Date              `json:"date"`
	StartTime   TimeOfDay         `json:"startTime"`
	EndTime     TimeOfDay         `json:"endTime"`
	Status      ReservationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	CancelledAt *time.Time        `json:"cancelled_at,omitempty"`
}
