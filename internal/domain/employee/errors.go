package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrSerialIDExists   = errors.New("serial_id already registered")
	ErrEmailExists      = errors.New("email already registered")
)
