package division

import "errors"

var (
	ErrDivisionNotFound = errors.New("division not found")
	ErrNameExists       = errors.New("division name already exists")
)
