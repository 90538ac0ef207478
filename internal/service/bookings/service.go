package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/CRS-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/CRS-BookingService/internal/service/bookings/models"
)

// Service read-side сервис для работы с бронированиями
// Запись (admission, смена статуса) идет через usecases, чтение - здесь
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с опциональной фильтрацией по ресурсу и заявителю
// Результат отсортирован по startTime ASC, каждая запись дополнена данными
// ресурса (name, type, location)
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "List: fetching bookings"
	if req.ResourceID != nil {
		logMsg += fmt.Sprintf(", resource=%s", *req.ResourceID)
	}
	if req.RequesterID != nil {
		logMsg += fmt.Sprintf(", requester=%s", *req.RequesterID)
	}
	s.logger.Info(logMsg)

	bookings, err := s.bookingRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}
