package court

import (
	"context"
	"errors"

	"courtbook/internal/domain"
	"courtbook/internal/repository"
)

type Service struct {
	courts Repository
}

func NewService(courts Repository) *Service {
	return &Service{courts: courts}
}

func (s *Service) List(ctx context.Context) ([]domain.Court, error) {
	return s.courts.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	c, err := s.courts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, req CreateCourtRequest) (*domain.Court, error) {
	status := domain.CourtStatus(req.Status)
	if req.Status == "" {
		status = domain.CourtAvailable
	}
	if err := checkCourtFields(status, req.OpeningHour, req.ClosingHour); err != nil {
		return nil, err
	}

	c := &domain.Court{
		Name:        req.Name,
		Status:      status,
		OpeningHour: req.OpeningHour,
		ClosingHour: req.ClosingHour,
	}
	if err := s.courts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateCourtRequest) (*domain.Court, error) {
	status := domain.CourtStatus(req.Status)
	if err := checkCourtFields(status, req.OpeningHour, req.ClosingHour); err != nil {
		return nil, err
	}

	c := &domain.Court{
		ID:          id,
		Name:        req.Name,
		Status:      status,
		OpeningHour: req.OpeningHour,
		ClosingHour: req.ClosingHour,
	}
	if err := s.courts.Update(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes the court only. Historical reservations keep their
// court reference; they are not owned by the court.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.courts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) AddClosedDate(ctx context.Context, id int64, date domain.Date) (*domain.Court, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.courts.AddClosedDate(ctx, id, date); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *Service) RemoveClosedDate(ctx context.Context, id int64, date domain.Date) (*domain.Court, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.courts.RemoveClosedDate(ctx, id, date); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func checkCourtFields(status domain.CourtStatus, open, close domain.TimeOfDay) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if open >= close {
		return ErrInvalidHours
	}
	return nil
}
