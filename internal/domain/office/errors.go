package office

import "errors"

var (
	ErrOfficeNotFound = errors.New("office not found")
	ErrNameExists     = errors.New("office name already exists")
)
