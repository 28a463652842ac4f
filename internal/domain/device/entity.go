package device

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Device is a badge-scan unit registered to an office. DeviceCode is what the scan
// payload carries and is unique.
type Device struct {
	ID         int64
	DeviceCode string
	DeviceName string
	Status     Status
	Location   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Active reports whether the device may originate scan events.
func (d *Device) Active() bool {
	return d.Status == StatusActive
}
