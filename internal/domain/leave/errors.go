package leave

import "errors"

var (
	ErrLeaveNotFound    = errors.New("leave record not found")
	ErrOverlappingLeave = errors.New("employee already has leave in this period")
)
