package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (пустой обязательный атрибут)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidInterval возвращается, когда интервал бронирования некорректен
	// (start >= end или нулевые значения)
	ErrInvalidInterval = errors.New("create_booking: invalid booking interval")

	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("create_booking: resource not found")

	// ErrResourceUnavailable возвращается, когда ресурс выведен из оборота
	// администратором (status = Unavailable)
	ErrResourceUnavailable = errors.New("create_booking: resource is unavailable")

	// ErrTimeSlotConflict возвращается, когда запрошенный интервал пересекается
	// с активным бронированием этого ресурса
	ErrTimeSlotConflict = errors.New("create_booking: time slot conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
