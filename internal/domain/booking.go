package domain

import "time"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending  BookingStatus = "Pending"
	StatusApproved BookingStatus = "Approved"
	StatusRejected BookingStatus = "Rejected"
)

// validTransitions таблица допустимых переходов статусов
// Pending - единственное нетерминальное состояние
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending: {StatusApproved, StatusRejected},
}

// Valid returns true if the status is one of the known booking statuses
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal returns true if no transition leaves this status
func (s BookingStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo returns true if the transition s -> next is allowed
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking represents a time-bounded reservation of a campus resource
type Booking struct {
	ID            string
	ResourceID    string
	RequesterID   string // внешний идентификатор, сервисом не аутентифицируется
	RequesterName string
	StartTime     time.Time
	EndTime       time.Time
	Purpose       string
	Status        BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time

	// Данные ресурса из JOIN, заполняются только read-side запросами
	ResourceName     string
	ResourceType     ResourceType
	ResourceLocation *string
}

// IsActive returns true if the booking participates in conflict checks
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// OverlapsInterval returns true if the booking overlaps [start, end)
func (b *Booking) OverlapsInterval(start, end time.Time) bool {
	return Overlaps(b.StartTime, b.EndTime, start, end)
}

// Overlaps reports whether half-open intervals [aStart, aEnd) and [bStart, bEnd)
// share at least one instant. A booking ending exactly when another starts
// does not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// BookingsFilter фильтр для получения списка бронирований
// Оба поля опциональны и комбинируются по AND
type BookingsFilter struct {
	ResourceID  *string
	RequesterID *string
}
