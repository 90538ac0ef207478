package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/CRS-BookingService/internal/domain"
	"github.com/m04kA/CRS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CRS-BookingService/pkg/psqlbuilder"
)

// pgForeignKeyViolation код ошибки PostgreSQL при нарушении внешнего ключа
const pgForeignKeyViolation = "23503"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Идентификатор присваивается репозиторием (uuid), статус задает вызывающий код.
// Если в контексте передана активная транзакция, использует её - проверка
// конфликтов и вставка должны выполняться в одной транзакции.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	booking.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"resource_id",
			"requester_id",
			"requester_name",
			"start_time",
			"end_time",
			"purpose",
			"status",
		).
		Values(
			booking.ID,
			booking.ResourceID,
			booking.RequesterID,
			booking.RequesterName,
			booking.StartTime,
			booking.EndTime,
			booking.Purpose,
			booking.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgForeignKeyViolation {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"resource_id",
		"requester_id",
		"requester_name",
		"start_time",
		"end_time",
		"purpose",
		"status",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.ResourceID,
		&booking.RequesterID,
		&booking.RequesterName,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Purpose,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// GetActiveByResource получает бронирования ресурса в указанных статусах,
// отсортированные по start_time ASC
//
// Если вызов происходит внутри транзакции, добавляет FOR UPDATE - строки
// блокируются до конца транзакции, что сериализует конкурентные проверки
// конфликтов для одного ресурса. Блокировка scoped по ресурсу: запросы к
// другим ресурсам не конкурируют за эти строки.
func (r *Repository) GetActiveByResource(ctx context.Context, resourceID string, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(
		"id",
		"resource_id",
		"requester_id",
		"requester_name",
		"start_time",
		"end_time",
		"purpose",
		"status",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.Eq{"status": statusStrings}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByResource - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		// Ошибка драйвера остается в цепочке: конфликт сериализации (40001)
		// может возникнуть уже здесь, когда FOR UPDATE разблокируется за
		// конкурентной транзакцией, и менеджер должен его распознать
		return nil, fmt.Errorf("%w: GetActiveByResource - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// List получает бронирования с опциональной фильтрацией по ресурсу и заявителю,
// отсортированные по start_time ASC
// Каждая строка дополняется данными ресурса (name, type, location) через LEFT JOIN -
// read-side удобство для списочных ручек
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"b.id",
		"b.resource_id",
		"b.requester_id",
		"b.requester_name",
		"b.start_time",
		"b.end_time",
		"b.purpose",
		"b.status",
		"b.created_at",
		"b.updated_at",
		"r.name",
		"r.type",
		"r.location",
	).
		From("bookings b").
		LeftJoin("resources r ON r.id = b.resource_id").
		OrderBy("b.start_time ASC")

	// Оба фильтра опциональны и комбинируются по AND
	if filter.ResourceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.resource_id": *filter.ResourceID})
	}
	if filter.RequesterID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.requester_id": *filter.RequesterID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime
		var resourceName, resourceType sql.NullString

		err := rows.Scan(
			&booking.ID,
			&booking.ResourceID,
			&booking.RequesterID,
			&booking.RequesterName,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Purpose,
			&booking.Status,
			&createdAt,
			&updatedAt,
			&resourceName,
			&resourceType,
			&booking.ResourceLocation,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time
		booking.ResourceName = resourceName.String
		booking.ResourceType = domain.ResourceType(resourceType.String)

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateStatus обновляет статус бронирования и возвращает обновленную запись
// Допустимость перехода проверяет вызывающий код
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, resource_id, requester_id, requester_name, start_time, end_time, purpose, status, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.ResourceID,
		&booking.RequesterID,
		&booking.RequesterName,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Purpose,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - scan booking: %w", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.ResourceID,
			&booking.RequesterID,
			&booking.RequesterName,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Purpose,
			&booking.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
