package booking

import (
	"context"

	"courtbook/internal/domain"
)

// CourtRepository is the engine's read-only view of courts. GetByID must
// return a consistent snapshot including closed dates.
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// ReservationRepository is the reservation store contract. Update must be
// an atomic read-modify-write; the callback's error aborts it untouched.
type ReservationRepository interface {
	FindOverlapping(ctx context.Context, courtID int64, date domain.Date, start, end domain.TimeOfDay, excludeID int64) ([]domain.Reservation, error)
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, id int64, mutate func(*domain.Reservation) error) (*domain.Reservation, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Reservation, error)
	ListByCourt(ctx context.Context, courtID int64) ([]domain.Reservation, error)
	ListByCourtDate(ctx context.Context, courtID int64, date domain.Date) ([]domain.Reservation, error)
}

// EventSink receives reservation lifecycle events. Implementations must
// not block; the engine ignores a nil sink.
type EventSink interface {
	ReservationCreated(r *domain.Reservation)
	ReservationRescheduled(r *domain.Reservation)
	ReservationCancelled(r *domain.Reservation)
}
