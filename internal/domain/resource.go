package domain

import "time"

// ResourceType represents the category of a bookable campus resource
type ResourceType string

const (
	TypeLab       ResourceType = "Lab"
	TypeHall      ResourceType = "Hall"
	TypeEquipment ResourceType = "Equipment"
)

// Valid returns true if the type is one of the known resource types
func (t ResourceType) Valid() bool {
	switch t {
	case TypeLab, TypeHall, TypeEquipment:
		return true
	}
	return false
}

// ResourceStatus represents the administrative availability of a resource.
// It is an administrator override, independent of booking state.
type ResourceStatus string

const (
	ResourceAvailable   ResourceStatus = "Available"
	ResourceUnavailable ResourceStatus = "Unavailable"
)

// Valid returns true if the status is one of the known resource statuses
func (s ResourceStatus) Valid() bool {
	return s == ResourceAvailable || s == ResourceUnavailable
}

// Resource represents a bookable campus asset (lab, hall, equipment)
type Resource struct {
	ID          string
	Name        string
	Type        ResourceType
	Description *string
	Location    *string
	Status      ResourceStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if the resource accepts new bookings
func (r *Resource) IsAvailable() bool {
	return r.Status == ResourceAvailable
}

// ResourcesFilter фильтр для получения списка ресурсов
type ResourcesFilter struct {
	Type   *ResourceType
	Status *ResourceStatus
}
