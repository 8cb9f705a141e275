package repository

import (
	"context"
	"time"

	"courtbook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourtRepository struct {
	db *gorm.DB
}

func NewCourtRepository(db *gorm.DB) *CourtRepository {
	return &CourtRepository{db: db}
}

type courtModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Status      string    `gorm:"column:status"`
	OpenMinute  int       `gorm:"column:open_minute"`
	CloseMinute int       `gorm:"column:close_minute"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (courtModel) TableName() string { return "courts" }

type courtClosedDateModel struct {
	ID      int64  `gorm:"column:id;primaryKey"`
	CourtID int64  `gorm:"column:court_id;uniqueIndex:idx_court_closed_date"`
	Date    string `gorm:"column:date;uniqueIndex:idx_court_closed_date"`
}

func (courtClosedDateModel) TableName() string { return "court_closed_dates" }

func toDomainCourt(m courtModel, closed []courtClosedDateModel) *domain.Court {
	dates := make([]domain.Date, 0, len(closed))
	for _, cd := range closed {
		dates = append(dates, domain.Date(cd.Date))
	}

	return &domain.Court{
		ID:          m.ID,
		Name:        m.Name,
		Status:      domain.CourtStatus(m.Status),
		OpeningHour: domain.TimeOfDay(m.OpenMinute),
		ClosingHour: domain.TimeOfDay(m.CloseMinute),
		ClosedDates: dates,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toCourtModel(c *domain.Court) courtModel {
	return courtModel{
		ID:          c.ID,
		Name:        c.Name,
		Status:      string(c.Status),
		OpenMinute:  int(c.OpeningHour),
		CloseMinute: int(c.ClosingHour),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// GetByID loads the court together with its closed dates inside one
// transaction, so the scheduling engine sees a single consistent
// snapshot even while an admin edits the court.
func (r *CourtRepository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	var court *domain.Court
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m courtModel
		if err := tx.First(&m, id).Error; err != nil {
			return mapError(err)
		}

		var closed []courtClosedDateModel
		if err := tx.Where("court_id = ?", id).Order("date").Find(&closed).Error; err != nil {
			return mapError(err)
		}

		court = toDomainCourt(m, closed)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return court, nil
}

func (r *CourtRepository) List(ctx context.Context) ([]domain.Court, error) {
	var models []courtModel
	if tx := r.db.WithContext(ctx).Order("id").Find(&models); tx.Error != nil {
		return nil, mapError(tx.Error)
	}

	var closed []courtClosedDateModel
	if tx := r.db.WithContext(ctx).Order("date").Find(&closed); tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	byCourt := make(map[int64][]courtClosedDateModel)
	for _, cd := range closed {
		byCourt[cd.CourtID] = append(byCourt[cd.CourtID], cd)
	}

	out := make([]domain.Court, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainCourt(m, byCourt[m.ID]))
	}
	return out, nil
}

func (r *CourtRepository) Create(ctx context.Context, c *domain.Court) error {
	m := toCourtModel(c)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return mapError(tx.Error)
	}
	*c = *toDomainCourt(m, nil)
	return nil
}

func (r *CourtRepository) Update(ctx context.Context, c *domain.Court) error {
	m := toCourtModel(c)
	tx := r.db.WithContext(ctx).Model(&courtModel{}).Where("id = ?", c.ID).Updates(map[string]any{
		"name":         m.Name,
		"status":       m.Status,
		"open_minute":  m.OpenMinute,
		"close_minute": m.CloseMinute,
	})
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CourtRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("court_id = ?", id).Delete(&courtClosedDateModel{}).Error; err != nil {
			return mapError(err)
		}
		res := tx.Delete(&courtModel{}, id)
		if res.Error != nil {
			return mapError(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// AddClosedDate is idempotent: re-adding an existing closed date is a no-op.
func (r *CourtRepository) AddClosedDate(ctx context.Context, courtID int64, date domain.Date) error {
	m := courtClosedDateModel{CourtID: courtID, Date: string(date)}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
	return mapError(tx.Error)
}

func (r *CourtRepository) RemoveClosedDate(ctx context.Context, courtID int64, date domain.Date) error {
	tx := r.db.WithContext(ctx).
		Where("court_id = ? AND date = ?", courtID, string(date)).
		Delete(&courtClosedDateModel{})
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
