package resource

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CRS-BookingService/internal/domain"
	"github.com/m04kA/CRS-BookingService/pkg/ptr"
)

var resourceColumns = []string{
	"id", "name", "type", "description", "location", "status", "created_at", "updated_at",
}

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO resources").
		WithArgs(
			sqlmock.AnyArg(), // id присваивается репозиторием
			"Chemistry Lab A",
			domain.TypeLab,
			"Fume hoods, 24 seats",
			"Building 2, Floor 1",
			domain.ResourceAvailable,
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), &domain.Resource{
		Name:        "Chemistry Lab A",
		Type:        domain.TypeLab,
		Description: ptr.Ptr("Fume hoods, 24 seats"),
		Location:    ptr.Ptr("Building 2, Floor 1"),
		Status:      domain.ResourceAvailable,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_OptionalFieldsOmitted(t *testing.T) {
	// description и location опциональны: репозиторий отправляет явный NULL,
	// и схема должна его принимать
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO resources").
		WithArgs(
			sqlmock.AnyArg(),
			"Chemistry Lab A",
			domain.TypeLab,
			nil,
			nil,
			domain.ResourceAvailable,
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), &domain.Resource{
		Name:   "Chemistry Lab A",
		Type:   domain.TypeLab,
		Status: domain.ResourceAvailable,
	})

	require.NoError(t, err)
	assert.Nil(t, created.Description)
	assert.Nil(t, created.Location)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT .+ FROM resources WHERE id = ?").
		WithArgs("resource-1").
		WillReturnRows(sqlmock.NewRows(resourceColumns).
			AddRow("resource-1", "Main Hall", "Hall", nil, "Building 1", "Available", now, now))

	resource, err := repo.GetByID(context.Background(), "resource-1")

	require.NoError(t, err)
	assert.Equal(t, "Main Hall", resource.Name)
	assert.Equal(t, domain.TypeHall, resource.Type)
	assert.Nil(t, resource.Description)
	require.NotNil(t, resource.Location)
	assert.Equal(t, "Building 1", *resource.Location)
	assert.True(t, resource.IsAvailable())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT .+ FROM resources").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(resourceColumns))

	resource, err := repo.GetByID(context.Background(), "missing")

	require.ErrorIs(t, err, ErrResourceNotFound)
	assert.Nil(t, resource)
}

func TestList_FilterByTypeAndStatus(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT .+ FROM resources .+ ORDER BY name ASC").
		WithArgs("Lab", "Available").
		WillReturnRows(sqlmock.NewRows(resourceColumns).
			AddRow("r-1", "Biology Lab", "Lab", nil, nil, "Available", now, now).
			AddRow("r-2", "Chemistry Lab A", "Lab", nil, nil, "Available", now, now))

	resources, err := repo.List(context.Background(), domain.ResourcesFilter{
		Type:   ptr.Ptr(domain.TypeLab),
		Status: ptr.Ptr(domain.ResourceAvailable),
	})

	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, "Biology Lab", resources[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_NoFilters(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT .+ FROM resources").
		WillReturnRows(sqlmock.NewRows(resourceColumns))

	resources, err := repo.List(context.Background(), domain.ResourcesFilter{})

	require.NoError(t, err)
	assert.Empty(t, resources)
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE resources").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.Resource{
		ID:   "missing",
		Name: "Renamed",
		Type: domain.TypeEquipment,
	})

	require.ErrorIs(t, err, ErrResourceNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("UPDATE resources SET status = .+ RETURNING").
		WithArgs("Unavailable", "resource-1").
		WillReturnRows(sqlmock.NewRows(resourceColumns).
			AddRow("resource-1", "Main Hall", "Hall", nil, nil, "Unavailable", now, now))

	resource, err := repo.UpdateStatus(context.Background(), "resource-1", domain.ResourceUnavailable)

	require.NoError(t, err)
	assert.Equal(t, domain.ResourceUnavailable, resource.Status)
	assert.False(t, resource.IsAvailable())
	require.NoError(t, mock.ExpectationsWereMet())
}
