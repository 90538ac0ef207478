package resources

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CRS-BookingService/internal/domain"
	resourceRepo "github.com/m04kA/CRS-BookingService/internal/infra/storage/resource"
	"github.com/m04kA/CRS-BookingService/internal/service/resources/models"
	"github.com/m04kA/CRS-BookingService/pkg/ptr"
)

type mockResourceRepo struct {
	createFunc       func(ctx context.Context, r *domain.Resource) (*domain.Resource, error)
	getByIDFunc      func(ctx context.Context, id string) (*domain.Resource, error)
	listFunc         func(ctx context.Context, filter domain.ResourcesFilter) ([]*domain.Resource, error)
	updateFunc       func(ctx context.Context, r *domain.Resource) error
	updateStatusFunc func(ctx context.Context, id string, status domain.ResourceStatus) (*domain.Resource, error)
}

func (m *mockResourceRepo) Create(ctx context.Context, r *domain.Resource) (*domain.Resource, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, r)
	}
	created := *r
	created.ID = "resource-1"
	return &created, nil
}

func (m *mockResourceRepo) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, resourceRepo.ErrResourceNotFound
}

func (m *mockResourceRepo) List(ctx context.Context, filter domain.ResourcesFilter) ([]*domain.Resource, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockResourceRepo) Update(ctx context.Context, r *domain.Resource) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, r)
	}
	return nil
}

func (m *mockResourceRepo) UpdateStatus(ctx context.Context, id string, status domain.ResourceStatus) (*domain.Resource, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return &domain.Resource{ID: id, Status: status}, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestCreate_NewResourceIsAvailable(t *testing.T) {
	repo := &mockResourceRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateResourceRequest{
		Name:     "Chemistry Lab A",
		Type:     "Lab",
		Location: ptr.Ptr("Building 2"),
	})

	require.NoError(t, err)
	assert.Equal(t, "resource-1", resp.ID)
	assert.Equal(t, string(domain.ResourceAvailable), resp.Status)
}

func TestCreate_InvalidFields(t *testing.T) {
	svc := NewService(&mockResourceRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  *models.CreateResourceRequest
	}{
		{"empty name", &models.CreateResourceRequest{Name: "", Type: "Lab"}},
		{"empty type", &models.CreateResourceRequest{Name: "Lab A", Type: ""}},
		{"unknown type", &models.CreateResourceRequest{Name: "Lab A", Type: "Classroom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Create(context.Background(), tt.req)

			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&mockResourceRepo{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "missing")

	require.ErrorIs(t, err, ErrResourceNotFound)
	assert.Nil(t, resp)
}

func TestList_FilterPassedToRepository(t *testing.T) {
	var gotFilter domain.ResourcesFilter
	repo := &mockResourceRepo{
		listFunc: func(ctx context.Context, filter domain.ResourcesFilter) ([]*domain.Resource, error) {
			gotFilter = filter
			return []*domain.Resource{
				{ID: "r-1", Name: "Biology Lab", Type: domain.TypeLab, Status: domain.ResourceAvailable},
			}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListResourcesRequest{
		Type:   ptr.Ptr("Lab"),
		Status: ptr.Ptr("Available"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Resources, 1)
	require.NotNil(t, gotFilter.Type)
	assert.Equal(t, domain.TypeLab, *gotFilter.Type)
	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, domain.ResourceAvailable, *gotFilter.Status)
}

func TestList_InvalidFilter(t *testing.T) {
	svc := NewService(&mockResourceRepo{}, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListResourcesRequest{
		Type: ptr.Ptr("Classroom"),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestUpdateStatus_MarkUnavailable(t *testing.T) {
	repo := &mockResourceRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), "resource-1", "Unavailable")

	require.NoError(t, err)
	assert.Equal(t, string(domain.ResourceUnavailable), resp.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewService(&mockResourceRepo{}, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), "resource-1", "Broken")

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &mockResourceRepo{
		updateStatusFunc: func(ctx context.Context, id string, status domain.ResourceStatus) (*domain.Resource, error) {
			return nil, resourceRepo.ErrResourceNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), "missing", "Unavailable")

	require.ErrorIs(t, err, ErrResourceNotFound)
	assert.Nil(t, resp)
}
