package court

import (
	"context"

	"courtbook/internal/domain"
)

// Repository is the court registry contract used by the admin surface.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	List(ctx context.Context) ([]domain.Court, error)
	Create(ctx context.Context, c *domain.Court) error
	Update(ctx context.Context, c *domain.Court) error
	Delete(ctx context.Context, id int64) error
	AddClosedDate(ctx context.Context, courtID int64, date domain.Date) error
	RemoveClosedDate(ctx context.Context, courtID int64, date domain.Date) error
}
