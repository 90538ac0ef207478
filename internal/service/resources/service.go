package resources

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/CRS-BookingService/internal/domain"
	resourceRepo "github.com/m04kA/CRS-BookingService/internal/infra/storage/resource"
	"github.com/m04kA/CRS-BookingService/internal/service/resources/models"
)

// Service сервис для работы с ресурсами (каталог бронируемых активов)
// Ресурсы создаются и редактируются администратором; физического удаления
// нет - на ресурс могут ссылаться бронирования
type Service struct {
	resourceRepo ResourceRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса ресурсов
func NewService(resourceRepo ResourceRepository, logger Logger) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// Create создает новый ресурс со статусом Available
func (s *Service) Create(ctx context.Context, req *models.CreateResourceRequest) (*models.ResourceResponse, error) {
	s.logger.Info("Create: creating resource name=%q, type=%q", req.Name, req.Type)

	if err := validateResourceFields(req.Name, req.Type); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	resource := &domain.Resource{
		Name:        req.Name,
		Type:        domain.ResourceType(req.Type),
		Description: req.Description,
		Location:    req.Location,
		Status:      domain.ResourceAvailable,
	}

	created, err := s.resourceRepo.Create(ctx, resource)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created resource id=%s", created.ID)
	return models.FromDomainResource(created), nil
}

// GetByID получает ресурс по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ResourceResponse, error) {
	s.logger.Info("GetByID: fetching resource id=%s", id)

	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("GetByID: resource id=%s not found", id)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("GetByID: repository error for resource id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainResource(resource), nil
}

// List получает ресурсы, отсортированные по name ASC
// Опционально фильтрует по типу и статусу
func (s *Service) List(ctx context.Context, req *models.ListResourcesRequest) (*models.ResourceListResponse, error) {
	s.logger.Info("List: fetching resources")

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resources, err := s.resourceRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d resources", len(resources))
	return models.FromDomainResourceList(resources), nil
}

// Update редактирует метаданные ресурса
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateResourceRequest) (*models.ResourceResponse, error) {
	s.logger.Info("Update: updating resource id=%s", id)

	if err := validateResourceFields(req.Name, req.Type); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("Update: resource id=%s not found", id)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("Update: repository error for resource id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	resource.Name = req.Name
	resource.Type = domain.ResourceType(req.Type)
	resource.Description = req.Description
	resource.Location = req.Location

	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			return nil, ErrResourceNotFound
		}
		s.logger.Error("Update: repository error for resource id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated resource id=%s", id)
	return models.FromDomainResource(resource), nil
}

// UpdateStatus меняет административный статус ресурса
// Unavailable выводит ресурс из оборота: новые бронирования отклоняются,
// существующие не затрагиваются
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (*models.ResourceResponse, error) {
	s.logger.Info("UpdateStatus: updating resource id=%s to status=%s", id, status)

	domainStatus := domain.ResourceStatus(status)
	if !domainStatus.Valid() {
		s.logger.Warn("UpdateStatus: invalid status %q for resource id=%s", status, id)
		return nil, fmt.Errorf("%w: status must be %s or %s", ErrInvalidInput, domain.ResourceAvailable, domain.ResourceUnavailable)
	}

	updated, err := s.resourceRepo.UpdateStatus(ctx, id, domainStatus)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("UpdateStatus: resource id=%s not found", id)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("UpdateStatus: repository error for resource id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: resource id=%s is now %s", id, updated.Status)
	return models.FromDomainResource(updated), nil
}

// validateResourceFields проверяет обязательные атрибуты ресурса
func validateResourceFields(name, resourceType string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxResourceNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxResourceNameLength)
	}
	if strings.TrimSpace(resourceType) == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	if !domain.ResourceType(resourceType).Valid() {
		return fmt.Errorf("%w: type must be one of %s, %s, %s",
			ErrInvalidInput, domain.TypeLab, domain.TypeHall, domain.TypeEquipment)
	}
	return nil
}
