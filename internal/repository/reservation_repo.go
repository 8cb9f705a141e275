package repository

import (
	"context"
	"time"

	"courtbook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	CourtID     int64      `gorm:"column:court_id;index:idx_reservations_court_date"`
	OwnerID     int64      `gorm:"column:owner_id;index"`
	Date        string     `gorm:"column:date;index:idx_reservations_court_date"`
	StartMinute int        `gorm:"column:start_minute"`
	EndMinute   int        `gorm:"column:end_minute"`
	Status      string     `gorm:"column:status"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
	CancelledAt *time.Time `gorm:"column:cancelled_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	return &domain.Reservation{
		ID:          m.ID,
		CourtID:     m.CourtID,
		OwnerID:     m.OwnerID,
		Date:        domain.Date(m.Date),
		StartTime:   domain.TimeOfDay(m.StartMinute),
		EndTime:     domain.TimeOfDay(m.EndMinute),
		Status:      domain.ReservationStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CancelledAt: m.CancelledAt,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	return reservationModel{
		ID:          r.ID,
		CourtID:     r.CourtID,
		OwnerID:     r.OwnerID,
		Date:        string(r.Date),
		StartMinute: int(r.StartTime),
		EndMinute:   int(r.EndTime),
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		CancelledAt: r.CancelledAt,
	}
}

// FindOverlapping returns booked reservations on court/date whose
// [start,end) intersects the half-open query interval. Back-to-back
// intervals do not count. excludeID skips one reservation so a
// reschedule never conflicts with itself (0 matches no row).
func (r *ReservationRepository) FindOverlapping(ctx context.Context, courtID int64, date domain.Date, start, end domain.TimeOfDay, excludeID int64) ([]domain.Reservation, error) {
	var models []reservationModel
	q := `
SELECT *
FROM reservations
WHERE court_id = ?
  AND date = ?
  AND status = 'booked'
  AND start_minute < ?
  AND end_minute > ?
  AND id <> ?
ORDER BY start_minute
`
	tx := r.db.WithContext(ctx).Raw(q, courtID, string(date), int(end), int(start), excludeID).Scan(&models)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}

	out := make([]domain.Reservation, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return mapError(tx.Error)
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	return toDomainReservation(m), nil
}

// Update performs an atomic read-modify-write on one reservation under a
// row lock. The mutation callback sees the current state and applies the
// change; returning an error aborts the transaction untouched.
func (r *ReservationRepository) Update(ctx context.Context, id int64, mutate func(*domain.Reservation) error) (*domain.Reservation, error) {
	var out *domain.Reservation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m reservationModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error; err != nil {
			return mapError(err)
		}

		res := toDomainReservation(m)
		if err := mutate(res); err != nil {
			return err
		}

		m = toReservationModel(res)
		if err := tx.Save(&m).Error; err != nil {
			return mapError(err)
		}
		out = toDomainReservation(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Reservation, error) {
	return r.list(ctx, "owner_id = ?", ownerID)
}

func (r *ReservationRepository) ListByCourt(ctx context.Context, courtID int64) ([]domain.Reservation, error) {
	return r.list(ctx, "court_id = ?", courtID)
}

func (r *ReservationRepository) ListByCourtDate(ctx context.Context, courtID int64, date domain.Date) ([]domain.Reservation, error) {
	return r.list(ctx, "court_id = ? AND date = ?", courtID, string(date))
}

func (r *ReservationRepository) list(ctx context.Context, cond string, args ...any) ([]domain.Reservation, error) {
	var models []reservationModel
	tx := r.db.WithContext(ctx).
		Where(cond, args...).
		Order("date, start_minute").
		Find(&models)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}

	out := make([]domain.Reservation, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}
