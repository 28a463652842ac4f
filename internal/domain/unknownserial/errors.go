package unknownserial

import "errors"

var (
	ErrRecordNotFound = errors.New("unknown serial record not found")
)
