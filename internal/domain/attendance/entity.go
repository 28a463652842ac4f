package attendance

import (
	"time"
)

// CheckInStatus classifies the first scan of the day.
type CheckInStatus string

const (
	CheckInOnTime CheckInStatus = "on_time"
	CheckInLate   CheckInStatus = "late"
)

// CheckOutStatus classifies the closing scan of the day.
type CheckOutStatus string

const (
	CheckOutEarly  CheckOutStatus = "early"
	CheckOutOnTime CheckOutStatus = "on_time"
	CheckOutLate   CheckOutStatus = "late"
)

// Category is the derived discipline classification combining both scan statuses.
type Category string

const (
	CategoryDiscipline   Category = "discipline"
	CategoryUndiscipline Category = "undiscipline"
	CategoryOvertime     Category = "overtime"
	CategoryUnclassified Category = "unclassified"
)

// Record is one employee's attendance for one calendar day. CheckIn is set once at
// creation; CheckOut, StatusCheckOut and Category are written together at most once.
type Record struct {
	ID             int64
	EmployeeID     int64
	DeviceCode     *string
	CheckIn        time.Time
	CheckOut       *time.Time
	StatusCheckIn  CheckInStatus
	StatusCheckOut *CheckOutStatus
	Category       *Category
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO / Join
	EmployeeName *string
}

// Completed reports whether the closing scan has been recorded.
func (r *Record) Completed() bool {
	return r.CheckOut != nil
}

// OutcomeKind enumerates the structured results of processing a scan event.
type OutcomeKind string

const (
	OutcomeCheckedIn        OutcomeKind = "checked_in"
	OutcomeCheckedOut       OutcomeKind = "checked_out"
	OutcomeRejected         OutcomeKind = "rejected"
	OutcomeEmployeeNotFound OutcomeKind = "employee_not_found"
	OutcomeUnknownSerial    OutcomeKind = "unknown_serial"
	OutcomeDeviceRejected   OutcomeKind = "device_rejected"
	OutcomeFailed           OutcomeKind = "failed"
)

// Rejection reasons surfaced through Outcome.Reason.
const (
	ReasonTooEarlyToCheckOut = "too early to check out"
	ReasonAlreadyCompleted   = "already completed"
	ReasonDeviceMismatch     = "device mismatch"
	ReasonDeviceNotFound     = "device not found"
	ReasonDeviceInactive     = "device inactive"
)

// Outcome is the structured result of a scan event. The upstream relay has no
// retry-on-5xx logic, so every path resolves to a value rather than an error.
type Outcome struct {
	Kind     OutcomeKind `json:"kind"`
	RecordID int64       `json:"record_id,omitempty"`
	Reason   string      `json:"reason,omitempty"`
}

func CheckedIn(recordID int64) Outcome {
	return Outcome{Kind: OutcomeCheckedIn, RecordID: recordID}
}

func CheckedOut(recordID int64) Outcome {
	return Outcome{Kind: OutcomeCheckedOut, RecordID: recordID}
}

func Rejected(reason string) Outcome {
	return Outcome{Kind: OutcomeRejected, Reason: reason}
}

func Failed(reason string) Outcome {
	return Outcome{Kind: OutcomeFailed, Reason: reason}
}

func EmployeeNotFound() Outcome {
	return Outcome{Kind: OutcomeEmployeeNotFound}
}

func UnknownSerial() Outcome {
	return Outcome{Kind: OutcomeUnknownSerial}
}

func DeviceRejected(reason string) Outcome {
	return Outcome{Kind: OutcomeDeviceRejected, Reason: reason}
}
