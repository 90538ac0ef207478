package booking

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CRS-BookingService/internal/domain"
	"github.com/m04kA/CRS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CRS-BookingService/pkg/ptr"
)

var bookingColumns = []string{
	"id", "resource_id", "requester_id", "requester_name",
	"start_time", "end_time", "purpose", "status", "created_at", "updated_at",
}

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func at(hour int) time.Time {
	return time.Date(2026, time.September, 14, hour, 0, 0, 0, time.UTC)
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(
			sqlmock.AnyArg(), // id присваивается репозиторием
			"resource-1",
			"user-42",
			"Alice Carter",
			at(10),
			at(11),
			"Lab session",
			domain.StatusPending,
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), &domain.Booking{
		ResourceID:    "resource-1",
		RequesterID:   "user-42",
		RequesterName: "Alice Carter",
		StartTime:     at(10),
		EndTime:       at(11),
		Purpose:       "Lab session",
		Status:        domain.StatusPending,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UnknownResource(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23503"})

	created, err := repo.Create(context.Background(), &domain.Booking{
		ResourceID:  "missing",
		RequesterID: "user-42",
		StartTime:   at(10),
		EndTime:     at(11),
		Status:      domain.StatusPending,
	})

	require.ErrorIs(t, err, ErrResourceNotFound)
	assert.Nil(t, created)
}

func TestGetByID(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT .+ FROM bookings WHERE id = ?").
		WithArgs("booking-1").
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow("booking-1", "resource-1", "user-42", "Alice Carter",
				at(10), at(11), "Lab session", "Pending", now, now))

	booking, err := repo.GetByID(context.Background(), "booking-1")

	require.NoError(t, err)
	assert.Equal(t, "booking-1", booking.ID)
	assert.Equal(t, domain.StatusPending, booking.Status)
	assert.Equal(t, at(10), booking.StartTime)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT .+ FROM bookings").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	booking, err := repo.GetByID(context.Background(), "missing")

	require.ErrorIs(t, err, ErrBookingNotFound)
	assert.Nil(t, booking)
}

func TestGetActiveByResource(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT .+ FROM bookings .+ ORDER BY start_time ASC").
		WithArgs("resource-1", "Pending", "Approved").
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow("b-1", "resource-1", "user-1", "Alice", at(9), at(10), "x", "Approved", now, now).
			AddRow("b-2", "resource-1", "user-2", "Bob", at(10), at(11), "y", "Pending", now, now))

	bookings, err := repo.GetActiveByResource(context.Background(), "resource-1", domain.ActiveStatuses)

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b-1", bookings[0].ID)
	assert.Equal(t, domain.StatusPending, bookings[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByResource_Empty(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT .+ FROM bookings").
		WithArgs("resource-1", "Pending", "Approved").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	bookings, err := repo.GetActiveByResource(context.Background(), "resource-1", domain.ActiveStatuses)

	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestList_FilterByResourceAndRequester(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	columns := append(append([]string{}, bookingColumns...), "name", "type", "location")

	mock.ExpectQuery("SELECT .+ FROM bookings b LEFT JOIN resources r ON r.id = b.resource_id").
		WithArgs("resource-1", "user-42").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("b-1", "resource-1", "user-42", "Alice", at(10), at(11), "x", "Pending", now, now,
				"Chemistry Lab A", "Lab", "Building 2"))

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{
		ResourceID:  ptr.Ptr("resource-1"),
		RequesterID: ptr.Ptr("user-42"),
	})

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Chemistry Lab A", bookings[0].ResourceName)
	assert.Equal(t, domain.TypeLab, bookings[0].ResourceType)
	require.NotNil(t, bookings[0].ResourceLocation)
	assert.Equal(t, "Building 2", *bookings[0].ResourceLocation)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("UPDATE bookings SET status = .+ RETURNING").
		WithArgs("Approved", "booking-1").
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow("booking-1", "resource-1", "user-42", "Alice", at(10), at(11), "x", "Approved", now, now))

	booking, err := repo.UpdateStatus(context.Background(), "booking-1", domain.StatusApproved)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, booking.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByResource_ForUpdateInsideTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := NewRepository(db)

	mock.ExpectBegin()
	// Внутри транзакции выборка активных бронирований блокирует строки
	mock.ExpectQuery("SELECT .+ FROM bookings .+ ORDER BY start_time ASC FOR UPDATE$").
		WithArgs("resource-1", "Pending", "Approved").
		WillReturnRows(sqlmock.NewRows(bookingColumns))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), &sql.TxOptions{})
	require.NoError(t, err)
	txCtx := dbmetrics.WithTx(context.Background(), tx)

	_, err = repo.GetActiveByResource(txCtx, "resource-1", domain.ActiveStatuses)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByResource_NoForUpdateOutsideTx(t *testing.T) {
	repo, mock := newMock(t)

	// Вне транзакции блокировка не нужна: запрос заканчивается сортировкой
	mock.ExpectQuery("SELECT .+ FROM bookings .+ ORDER BY start_time ASC$").
		WithArgs("resource-1", "Pending", "Approved").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetActiveByResource(context.Background(), "resource-1", domain.ActiveStatuses)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByResource_SerializationFailureStaysInChain(t *testing.T) {
	repo, mock := newMock(t)

	// 40001 на этапе выполнения запроса должен оставаться достижимым через
	// errors.As - по нему менеджер транзакций решает, повторять ли транзакцию
	mock.ExpectQuery("SELECT .+ FROM bookings").
		WillReturnError(&pq.Error{Code: "40001"})

	_, err := repo.GetActiveByResource(context.Background(), "resource-1", domain.ActiveStatuses)

	require.ErrorIs(t, err, ErrExecQuery)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, "40001", string(pqErr.Code))
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("UPDATE bookings").
		WithArgs("Rejected", "missing").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	booking, err := repo.UpdateStatus(context.Background(), "missing", domain.StatusRejected)

	require.ErrorIs(t, err, ErrBookingNotFound)
	assert.Nil(t, booking)
}
