package unknownserial

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Record is a scanned badge serial with no matching employee, queued for
// administrative review. At most one pending row exists per serial.
type Record struct {
	ID         int64
	SerialID   string
	Status     Status
	Note       *string
	DetectedAt time.Time
}
