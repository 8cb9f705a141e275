package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"courtbook/internal/domain"
	"courtbook/internal/pkg/keylock"
	"courtbook/internal/repository"
)

// maxCommitRetries bounds retries of serialization races at the store
// layer before the caller is told to try again.
const maxCommitRetries = 3

// Actor is the verified identity performing an operation, extracted from
// the token by the API layer. The engine never reads ambient auth state.
type Actor struct {
	UserID int64
	Role   domain.UserRole
}

func (a Actor) canModify(r *domain.Reservation) bool {
	return a.Role == domain.RoleAdmin || r.OwnerID == a.UserID
}

// Service is the scheduling engine. It owns the reservation lifecycle
// (booked -> cancelled) and guarantees that no two booked reservations
// on the same court and date overlap, under concurrent callers.
//
// Serializability per (court, date) comes from a keyed mutex: an
// operation holds the key from the overlap query until commit, so two
// racing conflicting requests cannot both observe "no conflict".
// Operations on different courts never contend. The store's overlap
// constraint remains as a commit-time backstop.
type Service struct {
	courts       CourtRepository
	reservations ReservationRepository
	events       EventSink
	locks        *keylock.KeyLock
	now          func() time.Time
}

func NewService(courts CourtRepository, reservations ReservationRepository, events EventSink) *Service {
	return &Service{
		courts:       courts,
		reservations: reservations,
		events:       events,
		locks:        keylock.New(),
		now:          time.Now,
	}
}

func slotKey(courtID int64, date domain.Date) string {
	return fmt.Sprintf("%d|%s", courtID, date)
}

func (s *Service) Create(ctx context.Context, actor Actor, req CreateReservationRequest) (*domain.Reservation, error) {
	court, err := s.courts.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	today := domain.DateOf(s.now())
	if err := ValidateStatic(court, req.Date, req.StartTime, req.EndTime, today); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(slotKey(req.CourtID, req.Date))
	defer unlock()

	for attempt := 0; attempt <= maxCommitRetries; attempt++ {
		overlaps, err := s.reservations.FindOverlapping(ctx, req.CourtID, req.Date, req.StartTime, req.EndTime, 0)
		if err != nil {
			return nil, err
		}
		if len(overlaps) > 0 {
			return nil, conflictError(overlaps)
		}

		r := &domain.Reservation{
			CourtID:   req.CourtID,
			OwnerID:   actor.UserID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Status:    domain.ReservationBooked,
		}
		err = s.reservations.Create(ctx, r)
		if errors.Is(err, repository.ErrSerialization) {
			continue
		}
		if errors.Is(err, repository.ErrConflict) {
			// Constraint backstop fired; the slot was taken at commit time.
			return nil, &ConflictError{}
		}
		if err != nil {
			return nil, err
		}

		if s.events != nil {
			s.events.ReservationCreated(r)
		}
		return r, nil
	}
	return nil, ErrUnavailable
}

// Reschedule atomically moves a booked reservation to a new date and
// interval, re-running full validation as if creating anew but excluding
// the reservation's own interval from the overlap check.
func (s *Service) Reschedule(ctx context.Context, actor Actor, id int64, req RescheduleRequest) (*domain.Reservation, error) {
	current, err := s.getReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.canModify(current) {
		return nil, ErrForbidden
	}
	if current.Status == domain.ReservationCancelled {
		return nil, ErrInvalidState
	}

	court, err := s.courts.GetByID(ctx, current.CourtID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	today := domain.DateOf(s.now())
	if err := ValidateStatic(court, req.Date, req.StartTime, req.EndTime, today); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(slotKey(current.CourtID, req.Date))
	defer unlock()

	for attempt := 0; attempt <= maxCommitRetries; attempt++ {
		overlaps, err := s.reservations.FindOverlapping(ctx, current.CourtID, req.Date, req.StartTime, req.EndTime, id)
		if err != nil {
			return nil, err
		}
		if len(overlaps) > 0 {
			return nil, conflictError(overlaps)
		}

		updated, err := s.reservations.Update(ctx, id, func(r *domain.Reservation) error {
			// Re-check under the row lock: a concurrent cancel wins.
			if r.Status != domain.ReservationBooked {
				return ErrInvalidState
			}
			r.Date = req.Date
			r.StartTime = req.StartTime
			r.EndTime = req.EndTime
			return nil
		})
		if errors.Is(err, repository.ErrSerialization) {
			continue
		}
		if errors.Is(err, repository.ErrConflict) {
			return nil, &ConflictError{}
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}

		if s.events != nil {
			s.events.ReservationRescheduled(updated)
		}
		return updated, nil
	}
	return nil, ErrUnavailable
}

// Cancel marks a reservation cancelled. Cancelling an already cancelled
// reservation is a success, so a timed-out caller can retry safely.
func (s *Service) Cancel(ctx context.Context, actor Actor, id int64) (*domain.Reservation, error) {
	current, err := s.getReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.canModify(current) {
		return nil, ErrForbidden
	}
	if current.Status == domain.ReservationCancelled {
		return current, nil
	}

	updated, err := s.reservations.Update(ctx, id, func(r *domain.Reservation) error {
		if r.Status == domain.ReservationCancelled {
			return nil
		}
		r.Status = domain.ReservationCancelled
		now := s.now()
		r.CancelledAt = &now
		return nil
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.ReservationCancelled(updated)
	}
	return updated, nil
}

func (s *Service) GetByID(ctx context.Context, actor Actor, id int64) (*domain.Reservation, error) {
	r, err := s.getReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.canModify(r) {
		return nil, ErrForbidden
	}
	return r, nil
}

func (s *Service) ListMine(ctx context.Context, actor Actor) ([]domain.Reservation, error) {
	return s.reservations.ListByOwner(ctx, actor.UserID)
}

func (s *Service) ListByCourt(ctx context.Context, courtID int64) ([]domain.Reservation, error) {
	if _, err := s.courts.GetByID(ctx, courtID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return s.reservations.ListByCourt(ctx, courtID)
}

// Availability reports the operating window, booked intervals and free
// gaps for one court day. Read path only, no locking.
func (s *Service) Availability(ctx context.Context, courtID int64, date domain.Date) (*DayAvailability, error) {
	court, err := s.courts.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	out := &DayAvailability{
		CourtID:     courtID,
		Date:        date,
		OpeningHour: court.OpeningHour,
		ClosingHour: court.ClosingHour,
		BookedSlots: []Slot{},
		FreeSlots:   []Slot{},
	}
	if court.Status != domain.CourtAvailable || court.IsClosedOn(date) {
		out.Closed = true
		return out, nil
	}

	all, err := s.reservations.ListByCourtDate(ctx, courtID, date)
	if err != nil {
		return nil, err
	}
	booked := make([]Slot, 0, len(all))
	for _, r := range all {
		if r.Status == domain.ReservationBooked {
			booked = append(booked, Slot{Start: r.StartTime, End: r.EndTime})
		}
	}

	out.BookedSlots = booked
	out.FreeSlots = subtractBooked(court.OpeningHour, court.ClosingHour, booked)
	return out, nil
}

// subtractBooked returns the gaps of [open, close] not covered by the
// given intervals. Intervals are clamped to the window and merged first.
func subtractBooked(open, close domain.TimeOfDay, booked []Slot) []Slot {
	if len(booked) == 0 {
		return []Slot{{Start: open, End: close}}
	}

	sort.Slice(booked, func(i, j int) bool { return booked[i].Start < booked[j].Start })

	merged := make([]Slot, 0, len(booked))
	for _, b := range booked {
		if b.Start < open {
			b.Start = open
		}
		if b.End > close {
			b.End = close
		}
		if b.End <= b.Start {
			continue
		}

		if len(merged) > 0 && b.Start <= merged[len(merged)-1].End {
			if b.End > merged[len(merged)-1].End {
				merged[len(merged)-1].End = b.End
			}
			continue
		}
		merged = append(merged, b)
	}

	cur := open
	out := make([]Slot, 0)
	for _, b := range merged {
		if b.Start > cur {
			out = append(out, Slot{Start: cur, End: b.Start})
		}
		if b.End > cur {
			cur = b.End
		}
	}
	if cur < close {
		out = append(out, Slot{Start: cur, End: close})
	}
	return out
}

func (s *Service) getReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}
