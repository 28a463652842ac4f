package leave

import (
	"context"
	"time"

	"github.com/presensia/presensi-backend-go/internal/pkg/validator"
)

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id int64) (Leave, error)
	List(ctx context.Context, page, limit int) ([]Leave, int64, error)
	Delete(ctx context.Context, id int64) error

	// ExistsInRange reports whether any of the employee's leave ranges intersect
	// the inclusive [start, end] window.
	ExistsInRange(ctx context.Context, employeeID int64, start, end time.Time) (bool, error)

	// CountOnLeaveToday counts employees currently on leave, for the dashboard.
	CountOnLeaveToday(ctx context.Context) (int64, error)
}

// LeaveService defines business logic for leave management.
type LeaveService interface {
	CreateLeave(ctx context.Context, req CreateRequest) (Leave, error)
	GetLeave(ctx context.Context, id int64) (Leave, error)
	ListLeaves(ctx context.Context, page, limit int) (ListResponse, error)
	DeleteLeave(ctx context.Context, id int64) error
}

type ListResponse struct {
	TotalCount int64
	Page       int
	Limit      int
	TotalPages int
	Leaves     []Leave
}

type CreateRequest struct {
	EmployeeID int64  `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	LeaveType  string `json:"leave_type"`
	Reason     string `json:"reason"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must use format YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must use format YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	if !validator.IsInSlice(r.LeaveType, []string{
		string(TypeAnnual), string(TypeSick), string(TypeMaternity), string(TypeOther),
	}) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type must be annual, sick, maternity or other"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
