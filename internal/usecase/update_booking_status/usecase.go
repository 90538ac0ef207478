package update_booking_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CRS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/CRS-BookingService/internal/infra/storage/booking"
)

// UseCase use case изменения статуса бронирования (approve/reject)
//
// Статусы образуют конечный автомат: Pending -> Approved, Pending -> Rejected.
// Терминальные статусы покинуть нельзя. Подтверждение перепроверяет
// пересечения: два пересекающихся Pending могли быть приняты до того, как
// один из них был подтвержден, и второй подтвердить уже нельзя
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case изменения статуса бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: booking=%s, target status=%s", req.BookingID, req.Status)

	// 1. Целевой статус должен быть известным и не начальным
	newStatus := domain.BookingStatus(req.Status)
	if !newStatus.Valid() || newStatus == domain.StatusPending {
		uc.logger.Warn("UpdateBookingStatus: invalid target status %q for booking id=%s", req.Status, req.BookingID)
		return nil, fmt.Errorf("%w: status must be %s or %s", ErrInvalidInput, domain.StatusApproved, domain.StatusRejected)
	}

	var result *domain.Booking

	// 2. Проверка перехода и запись статуса в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBookingStatus: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBookingStatus: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 2.1. Таблица переходов: из терминального статуса выхода нет
		if !booking.Status.CanTransitionTo(newStatus) {
			uc.logger.Warn("UpdateBookingStatus: transition %s -> %s is not allowed for booking id=%s",
				booking.Status, newStatus, req.BookingID)
			return ErrInvalidTransition
		}

		// 2.2. Подтверждение перепроверяет пересечения с другими активными
		// бронированиями ресурса (под блокировкой FOR UPDATE)
		if newStatus == domain.StatusApproved {
			active, err := uc.bookingRepo.GetActiveByResource(txCtx, booking.ResourceID, domain.ActiveStatuses)
			if err != nil {
				uc.logger.Error("UpdateBookingStatus: failed to get active bookings for resource id=%s: %v",
					booking.ResourceID, err)
				return fmt.Errorf("%w: failed to get active bookings: %w", ErrInternal, err)
			}

			for _, other := range active {
				if other.ID == booking.ID {
					continue
				}
				if other.OverlapsInterval(booking.StartTime, booking.EndTime) {
					uc.logger.Warn("UpdateBookingStatus: approving booking id=%s would overlap booking id=%s (status=%s)",
						booking.ID, other.ID, other.Status)
					return ErrTimeSlotConflict
				}
			}
		}

		updated, err := uc.bookingRepo.UpdateStatus(txCtx, req.BookingID, newStatus)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBookingStatus: failed to update booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBookingStatus: booking id=%s is now %s", result.ID, result.Status)

	return fromDomain(result), nil
}
