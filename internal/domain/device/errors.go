package device

import "errors"

// Device domain errors
var (
	ErrDeviceNotFound   = errors.New("device not found")
	ErrDeviceCodeExists = errors.New("device_code already registered")
)
