package domain

// Business validation constants
const (
	MaxPurposeLength       = 500
	MaxRequesterNameLength = 200
	MaxResourceNameLength  = 200
)

// ActiveStatuses список статусов, участвующих в проверке конфликтов
// Pending блокирует слот так же, как Approved; Rejected не блокирует никогда
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}
