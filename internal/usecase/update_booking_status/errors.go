package update_booking_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (неизвестный целевой статус)
	ErrInvalidInput = errors.New("update_booking_status: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking_status: booking not found")

	// ErrInvalidTransition возвращается при попытке покинуть терминальный
	// статус или выполнить переход вне таблицы переходов
	ErrInvalidTransition = errors.New("update_booking_status: invalid status transition")

	// ErrTimeSlotConflict возвращается, когда подтверждение бронирования
	// создало бы пересечение с другим активным бронированием ресурса
	ErrTimeSlotConflict = errors.New("update_booking_status: time slot conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking_status: internal error")
)
