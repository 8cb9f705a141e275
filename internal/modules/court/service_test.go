package court

import (
	"context"
	"testing"

	"courtbook/internal/domain"
	"courtbook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCourtRepository struct {
	mock.Mock
}

func (m *MockCourtRepository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Court), args.Error(1)
}

func (m *MockCourtRepository) List(ctx context.Context) ([]domain.Court, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Court), args.Error(1)
}

func (m *MockCourtRepository) Create(ctx context.Context, c *domain.Court) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil && c != nil {
		c.ID = 11
	}
	return args.Error(0)
}

func (m *MockCourtRepository) Update(ctx context.Context, c *domain.Court) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourtRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCourtRepository) AddClosedDate(ctx context.Context, courtID int64, date domain.Date) error {
	args := m.Called(ctx, courtID, date)
	return args.Error(0)
}

func (m *MockCourtRepository) RemoveClosedDate(ctx context.Context, courtID int64, date domain.Date) error {
	args := m.Called(ctx, courtID, date)
	return args.Error(0)
}

func mustTime(t *testing.T, s string) domain.TimeOfDay {
	t.Helper()
	v, err := domain.ParseTimeOfDay(s)
	assert.NoError(t, err)
	return v
}

func TestService_Create_DefaultsToAvailable(t *testing.T) {
	repo := new(MockCourtRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	c, err := service.Create(context.Background(), CreateCourtRequest{
		Name:        "Court 1",
		OpeningHour: mustTime(t, "08:00"),
		ClosingHour: mustTime(t, "22:00"),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.CourtAvailable, c.Status)
	assert.Equal(t, int64(11), c.ID)
}

func TestService_Create_InvalidHours(t *testing.T) {
	repo := new(MockCourtRepository)
	service := NewService(repo)

	_, err := service.Create(context.Background(), CreateCourtRequest{
		Name:        "Court 1",
		OpeningHour: mustTime(t, "22:00"),
		ClosingHour: mustTime(t, "08:00"),
	})

	assert.ErrorIs(t, err, ErrInvalidHours)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Create_InvalidStatus(t *testing.T) {
	repo := new(MockCourtRepository)
	service := NewService(repo)

	_, err := service.Create(context.Background(), CreateCourtRequest{
		Name:        "Court 1",
		Status:      "renovating",
		OpeningHour: mustTime(t, "08:00"),
		ClosingHour: mustTime(t, "22:00"),
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(MockCourtRepository)
	repo.On("Update", mock.Anything, mock.Anything).Return(repository.ErrNotFound)

	service := NewService(repo)

	_, err := service.Update(context.Background(), 404, UpdateCourtRequest{
		Name:        "Court 1",
		Status:      "maintenance",
		OpeningHour: mustTime(t, "08:00"),
		ClosingHour: mustTime(t, "22:00"),
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(MockCourtRepository)
	repo.On("Delete", mock.Anything, int64(404)).Return(repository.ErrNotFound)

	service := NewService(repo)

	assert.ErrorIs(t, service.Delete(context.Background(), 404), ErrNotFound)
}

func TestService_AddClosedDate(t *testing.T) {
	repo := new(MockCourtRepository)
	court := &domain.Court{ID: 1, Name: "Court 1", Status: domain.CourtAvailable}
	repo.On("GetByID", mock.Anything, int64(1)).Return(court, nil)
	repo.On("AddClosedDate", mock.Anything, int64(1), domain.Date("2025-07-04")).Return(nil)

	service := NewService(repo)

	_, err := service.AddClosedDate(context.Background(), 1, "2025-07-04")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_RemoveClosedDate_NotFound(t *testing.T) {
	repo := new(MockCourtRepository)
	court := &domain.Court{ID: 1, Name: "Court 1", Status: domain.CourtAvailable}
	repo.On("GetByID", mock.Anything, int64(1)).Return(court, nil)
	repo.On("RemoveClosedDate", mock.Anything, int64(1), domain.Date("2025-07-04")).Return(repository.ErrNotFound)

	service := NewService(repo)

	_, err := service.RemoveClosedDate(context.Background(), 1, "2025-07-04")
	assert.ErrorIs(t, err, ErrNotFound)
}
