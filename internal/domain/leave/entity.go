package leave

import "time"

type Type string

const (
	TypeAnnual    Type = "annual"
	TypeSick      Type = "sick"
	TypeMaternity Type = "maternity"
	TypeOther     Type = "other"
)

type Leave struct {
	ID         int64
	EmployeeID int64
	StartDate  time.Time
	EndDate    time.Time
	LeaveType  Type
	Reason     string
	CreatedAt  time.Time

	// DTO / Join
	EmployeeName *string
}
