package device

import "context"

// Registry is the narrow lookup surface the event gateway uses to validate the
// originating device before any attendance state is touched.
type Registry interface {
	// FindByCode resolves a device code, nil when unregistered.
	FindByCode(ctx context.Context, code string) (*Device, error)
}

// DeviceRepository defines data access for devices.
type DeviceRepository interface {
	Registry

	Create(ctx context.Context, d Device) (Device, error)
	GetByID(ctx context.Context, id int64) (Device, error)
	List(ctx context.Context, filter Filter) ([]Device, int64, error)
	Update(ctx context.Context, d Device) error
	Delete(ctx context.Context, id int64) error
}

// DeviceService defines business logic for device management.
type DeviceService interface {
	CreateDevice(ctx context.Context, req CreateRequest) (Device, error)
	GetDevice(ctx context.Context, id int64) (Device, error)
	ListDevices(ctx context.Context, filter Filter) (ListResponse, error)
	UpdateDevice(ctx context.Context, req UpdateRequest) (Device, error)
	DeleteDevice(ctx context.Context, id int64) error
}
