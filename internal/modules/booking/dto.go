package booking

import "courtbook/internal/domain"

// CreateReservationRequest is the engine's input for a new booking.
type CreateReservationRequest struct {
	CourtID   int64
	Date      domain.Date
	StartTime domain.TimeOfDay
	EndTime   domain.TimeOfDay
}

type RescheduleRequest struct {
	Date      domain.Date
	StartTime domain.TimeOfDay
	EndTime   domain.TimeOfDay
}

// Wire bodies keep the time fields as pointers: "00:00" unmarshals to
// the zero value, which a required check on a plain field would reject.
type createReservationBody struct {
	CourtID   int64             `json:"courtId" binding:"required"`
	Date      domain.Date       `json:"date" binding:"required"`
	StartTime *domain.TimeOfDay `json:"startTime" binding:"required"`
	EndTime   *domain.TimeOfDay `json:"endTime" binding:"required"`
}

func (b createReservationBody) toRequest() CreateReservationRequest {
	return CreateReservationRequest{
		CourtID:   b.CourtID,
		Date:      b.Date,
		StartTime: *b.StartTime,
		EndTime:   *b.EndTime,
	}
}

type rescheduleBody struct {
	Date      domain.Date       `json:"date" binding:"required"`
	StartTime *domain.TimeOfDay `json:"startTime" binding:"required"`
	EndTime   *domain.TimeOfDay `json:"endTime" binding:"required"`
}

func (b rescheduleBody) toRequest() RescheduleRequest {
	return RescheduleRequest{
		Date:      b.Date,
		StartTime: *b.StartTime,
		EndTime:   *b.EndTime,
	}
}

type Slot struct {
	Start domain.TimeOfDay `json:"start"`
	End   domain.TimeOfDay `json:"end"`
}

// DayAvailability describes one court day: the operating window, the
// booked intervals, and the free gaps between them.
type DayAvailability struct {
	CourtID     int64            `json:"court_id"`
	Date        domain.Date      `json:"date"`
	OpeningHour domain.TimeOfDay `json:"openingHour"`
	ClosingHour domain.TimeOfDay `json:"closingHour"`
	Closed      bool             `json:"closed"`
	BookedSlots []Slot           `json:"booked_slots"`
	FreeSlots   []Slot           `json:"free_slots"`
}
