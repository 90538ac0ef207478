package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CRS-BookingService/internal/domain"
	resourceRepo "github.com/m04kA/CRS-BookingService/internal/infra/storage/resource"
	"github.com/m04kA/CRS-BookingService/pkg/ptr"
)

// --- Моки ---

type mockBookingRepo struct {
	createFunc              func(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	getActiveByResourceFunc func(ctx context.Context, resourceID string, statuses []domain.BookingStatus) ([]*domain.Booking, error)

	createCalls int
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, b)
	}
	created := *b
	created.ID = "booking-1"
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	return &created, nil
}

func (m *mockBookingRepo) GetActiveByResource(ctx context.Context, resourceID string, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	if m.getActiveByResourceFunc != nil {
		return m.getActiveByResourceFunc(ctx, resourceID, statuses)
	}
	return nil, nil
}

type mockResourceRepo struct {
	getByIDFunc func(ctx context.Context, id string) (*domain.Resource, error)
}

func (m *mockResourceRepo) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return availableResource(id), nil
}

// passthroughTxManager выполняет функцию без реальной транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func availableResource(id string) *domain.Resource {
	return &domain.Resource{
		ID:       id,
		Name:     "Chemistry Lab A",
		Type:     domain.TypeLab,
		Location: ptr.Ptr("Building 2, Floor 1"),
		Status:   domain.ResourceAvailable,
	}
}

func at(hour, min int) time.Time {
	return time.Date(2026, time.September, 14, hour, min, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		ResourceID:    "resource-1",
		RequesterID:   "user-42",
		RequesterName: "Alice Carter",
		StartTime:     at(10, 0),
		EndTime:       at(11, 0),
		Purpose:       "Organic chemistry practical",
	}
}

func newTestUseCase(bookings *mockBookingRepo, resources *mockResourceRepo) *UseCase {
	return NewUseCase(bookings, resources, passthroughTxManager{}, nopLogger{})
}

// --- Тесты ---

func TestExecute_Success(t *testing.T) {
	bookings := &mockBookingRepo{}
	uc := newTestUseCase(bookings, &mockResourceRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "resource-1", resp.ResourceID)
	assert.Equal(t, 1, bookings.createCalls)
}

func TestExecute_ConflictWithPendingBooking(t *testing.T) {
	bookings := &mockBookingRepo{
		getActiveByResourceFunc: func(ctx context.Context, resourceID string, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
			return []*domain.Booking{
				{
					ID:         "existing-1",
					ResourceID: resourceID,
					StartTime:  at(10, 0),
					EndTime:    at(12, 0),
					Status:     domain.StatusPending,
				},
			}, nil
		},
	}
	uc := newTestUseCase(bookings, &mockResourceRepo{})

	req := validRequest()
	req.StartTime = at(11, 0)
	req.EndTime = at(13, 0)

	resp, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrTimeSlotConflict)
	assert.Nil(t, resp)
	// при конфликте ничего не персистится
	assert.Equal(t, 0, bookings.createCalls)
}

func TestExecute_BackToBackIntervalsAccepted(t *testing.T) {
	// [10:00, 11:00) занят, запрашиваем [11:00, 12:00) — границы полузамкнутые
	bookings := &mockBookingRepo{
		getActiveByResourceFunc: func(ctx context.Context, resourceID string, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
			return []*domain.Booking{
				{
					ID:         "existing-1",
					ResourceID: resourceID,
					StartTime:  at(10, 0),
					EndTime:    at(11, 0),
					Status:     domain.StatusApproved,
				},
			}, nil
		},
	}
	uc := newTestUseCase(bookings, &mockResourceRepo{})

	req := validRequest()
	req.StartTime = at(11, 0)
	req.EndTime = at(12, 0)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 1, bookings.createCalls)
}

func TestExecute_RejectedBookingDoesNotBlockSlot(t *testing.T) {
	// Отклоненное бронирование освобождает слот даже при полном совпадении интервалов
	bookings := &mockBookingRepo{
		getActiveByResourceFunc: func(ctx context.Context, resourceID string, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
			// Репозиторий фильтрует по активным статусам, Rejected не возвращается
			assert.Equal(t, domain.ActiveStatuses, statuses)
			return nil, nil
		},
	}
	uc := newTestUseCase(bookings, &mockResourceRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
}

func TestExecute_ResourceNotFound(t *testing.T) {
	resources := &mockResourceRepo{
		getByIDFunc: func(ctx context.Context, id string) (*domain.Resource, error) {
			return nil, resourceRepo.ErrResourceNotFound
		},
	}
	bookings := &mockBookingRepo{}
	uc := newTestUseCase(bookings, resources)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrResourceNotFound)
	assert.Nil(t, resp)
	assert.Equal(t, 0, bookings.createCalls)
}

func TestExecute_ResourceUnavailable(t *testing.T) {
	resources := &mockResourceRepo{
		getByIDFunc: func(ctx context.Context, id string) (*domain.Resource, error) {
			r := availableResource(id)
			r.Status = domain.ResourceUnavailable
			return r, nil
		},
	}
	bookings := &mockBookingRepo{}
	uc := newTestUseCase(bookings, resources)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrResourceUnavailable)
	assert.Nil(t, resp)
	assert.Equal(t, 0, bookings.createCalls)
}

func TestExecute_InvalidInterval(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockResourceRepo{})

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"start after end", at(12, 0), at(11, 0)},
		{"zero duration", at(10, 0), at(10, 0)},
		{"zero times", time.Time{}, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = tt.start
			req.EndTime = tt.end

			resp, err := uc.Execute(context.Background(), req)

			require.ErrorIs(t, err, ErrInvalidInterval)
			assert.Nil(t, resp)
		})
	}
}

func TestExecute_MissingRequiredFields(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockResourceRepo{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty resourceId", func(req *Request) { req.ResourceID = "" }},
		{"empty requesterId", func(req *Request) { req.RequesterID = "  " }},
		{"empty requesterName", func(req *Request) { req.RequesterName = "" }},
		{"empty purpose", func(req *Request) { req.Purpose = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			resp, err := uc.Execute(context.Background(), req)

			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
		})
	}
}

func TestExecute_DriverErrorStaysInChain(t *testing.T) {
	// Ошибка драйвера из репозитория должна проходить сквозь обертку usecase:
	// менеджер транзакций по ней решает, повторять ли сериализуемую транзакцию
	repoErr := fmt.Errorf("booking.repository: failed to execute query: %w", &pq.Error{Code: "40001"})
	bookings := &mockBookingRepo{
		getActiveByResourceFunc: func(ctx context.Context, resourceID string, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
			return nil, repoErr
		},
	}
	uc := newTestUseCase(bookings, &mockResourceRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, "40001", string(pqErr.Code))
}

func TestFindConflict_FirstOverlappingBookingReturned(t *testing.T) {
	req := validRequest()
	req.StartTime = at(9, 0)
	req.EndTime = at(13, 0)

	active := []*domain.Booking{
		{ID: "a", StartTime: at(7, 0), EndTime: at(8, 0), Status: domain.StatusApproved},
		{ID: "b", StartTime: at(10, 0), EndTime: at(11, 0), Status: domain.StatusPending},
		{ID: "c", StartTime: at(11, 0), EndTime: at(12, 0), Status: domain.StatusApproved},
	}

	conflict := findConflict(req, active)
	require.NotNil(t, conflict)
	assert.Equal(t, "b", conflict.ID)
}
