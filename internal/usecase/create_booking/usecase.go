package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CRS-BookingService/internal/domain"
	resourceRepo "github.com/m04kA/CRS-BookingService/internal/infra/storage/resource"
)

// UseCase use case создания бронирования (admission)
// Решает, может ли запрошенный интервал быть принят для ресурса:
// проверка конфликтов и вставка выполняются одной сериализуемой транзакцией
type UseCase struct {
	bookingRepo  BookingRepository
	resourceRepo ResourceRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Инвариант: для одного ресурса никакие два бронирования в статусах
// Pending/Approved не пересекаются по полузамкнутым интервалам. Конкурентные
// запросы на один ресурс сериализуются блокировкой его активных бронирований
// (SELECT ... FOR UPDATE) внутри сериализуемой транзакции; при конфликте
// ничего не персистится
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: resource=%s, requester=%s, interval=[%s, %s)",
		req.ResourceID, req.RequesterID, req.StartTime.Format("2006-01-02T15:04"), req.EndTime.Format("2006-01-02T15:04"))

	// 1. Валидация входных данных (до открытия транзакции)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Проверка конфликтов и вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Ресурс должен существовать
		resource, err := uc.resourceRepo.GetByID(txCtx, req.ResourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				uc.logger.Warn("CreateBooking: resource id=%s not found", req.ResourceID)
				return ErrResourceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get resource id=%s: %v", req.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %w", ErrInternal, err)
		}

		// 2.2. Выведенный из оборота ресурс не принимает новые бронирования
		if !resource.IsAvailable() {
			uc.logger.Warn("CreateBooking: resource id=%s is unavailable", req.ResourceID)
			return ErrResourceUnavailable
		}

		// 2.3. Активные бронирования ресурса с блокировкой (FOR UPDATE)
		// Pending блокирует слот так же, как Approved; Rejected не участвует
		active, err := uc.bookingRepo.GetActiveByResource(txCtx, req.ResourceID, domain.ActiveStatuses)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get active bookings for resource id=%s: %v", req.ResourceID, err)
			return fmt.Errorf("%w: failed to get active bookings: %w", ErrInternal, err)
		}

		// 2.4. Проверка пересечения интервалов
		if conflict := findConflict(req, active); conflict != nil {
			uc.logger.Warn("CreateBooking: conflict with booking id=%s (status=%s) on resource id=%s",
				conflict.ID, conflict.Status, req.ResourceID)
			return ErrTimeSlotConflict
		}

		// 2.5. Персистим новое бронирование в статусе Pending
		booking := &domain.Booking{
			ResourceID:    req.ResourceID,
			RequesterID:   req.RequesterID,
			RequesterName: req.RequesterName,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Purpose:       req.Purpose,
			Status:        domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %w", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s (status=%s)", result.ID, result.Status)

	return fromDomain(result), nil
}
