package resource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/CRS-BookingService/internal/domain"
	"github.com/m04kA/CRS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CRS-BookingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс исполнителя запросов (см. dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с ресурсами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый ресурс
// Идентификатор присваивается репозиторием (uuid)
func (r *Repository) Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	resource.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("resources").
		Columns(
			"id",
			"name",
			"type",
			"description",
			"location",
			"status",
		).
		Values(
			resource.ID,
			resource.Name,
			resource.Type,
			resource.Description,
			resource.Location,
			resource.Status,
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
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	resource.CreatedAt = createdAt.Time
	resource.UpdatedAt = updatedAt.Time

	return resource, nil
}

// GetByID получает ресурс по ID
// Если вызов происходит внутри транзакции, запрос выполняется в её рамках -
// admission-проверки читают ресурс под той же транзакцией, что и бронирования
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"type",
		"description",
		"location",
		"status",
		"created_at",
		"updated_at",
	).
		From("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var resource domain.Resource
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&resource.ID,
		&resource.Name,
		&resource.Type,
		&resource.Description,
		&resource.Location,
		&resource.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan resource: %w", ErrScanRow, err)
	}

	resource.CreatedAt = createdAt.Time
	resource.UpdatedAt = updatedAt.Time

	return &resource, nil
}

// List получает ресурсы с опциональной фильтрацией по типу и статусу,
// отсортированные по name ASC
// Обычный перезапускаемый запрос, не курсор
func (r *Repository) List(ctx context.Context, filter domain.ResourcesFilter) ([]*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"type",
		"description",
		"location",
		"status",
		"created_at",
		"updated_at",
	).
		From("resources").
		OrderBy("name ASC")

	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
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

	resources := make([]*domain.Resource, 0)

	for rows.Next() {
		var resource domain.Resource
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&resource.ID,
			&resource.Name,
			&resource.Type,
			&resource.Description,
			&resource.Location,
			&resource.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}

		resource.CreatedAt = createdAt.Time
		resource.UpdatedAt = updatedAt.Time

		resources = append(resources, &resource)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return resources, nil
}

// Update обновляет метаданные ресурса (административное редактирование)
func (r *Repository) Update(ctx context.Context, resource *domain.Resource) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("resources").
		Set("name", resource.Name).
		Set("type", resource.Type).
		Set("description", resource.Description).
		Set("location", resource.Location).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": resource.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrResourceNotFound
	}

	return nil
}

// UpdateStatus обновляет административный статус ресурса
// Статус ресурса независим от состояния бронирований - это override
// администратора, выводящий ресурс из оборота целиком
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ResourceStatus) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("resources").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, type, description, location, status, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	var resource domain.Resource
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&resource.ID,
		&resource.Name,
		&resource.Type,
		&resource.Description,
		&resource.Location,
		&resource.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - scan resource: %w", ErrScanRow, err)
	}

	resource.CreatedAt = createdAt.Time
	resource.UpdatedAt = updatedAt.Time

	return &resource, nil
}
