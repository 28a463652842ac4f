package attendance

import (
	"time"

	"github.com/presensia/presensi-backend-go/internal/pkg/validator"
)

type Filter struct {
	EmployeeID *int64
	Date       *string
	StartDate  *string
	EndDate    *string
	Category   *string
	Page       int
	Limit      int
}

type ListResponse struct {
	TotalCount int64
	Page       int
	Limit      int
	TotalPages int
	Records    []Record
}

// SummaryCounts feeds the dashboard. Present is the number of day-records, OnTime and
// Late count completed records by their classification.
type SummaryCounts struct {
	Present int64 `json:"present"`
	OnTime  int64 `json:"on_time"`
	Late    int64 `json:"late"`
}

// UpdateRequest carries admin corrections for a record. Only non-nil fields change.
type UpdateRequest struct {
	ID             int64   `json:"-"`
	CheckIn        *string `json:"check_in"`
	CheckOut       *string `json:"check_out"`
	StatusCheckIn  *string `json:"status_check_in"`
	StatusCheckOut *string `json:"status_check_out"`
	Category       *string `json:"category"`
}

const timestampLayout = "2006-01-02 15:04:05"

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.CheckIn != nil && *r.CheckIn != "" {
		if _, err := time.Parse(timestampLayout, *r.CheckIn); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must use format YYYY-MM-DD HH:MM:SS",
			})
		}
	}
	if r.CheckOut != nil && *r.CheckOut != "" {
		if _, err := time.Parse(timestampLayout, *r.CheckOut); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must use format YYYY-MM-DD HH:MM:SS",
			})
		}
	}

	if r.StatusCheckIn != nil && !validator.IsInSlice(*r.StatusCheckIn, []string{string(CheckInOnTime), string(CheckInLate)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status_check_in",
			Message: "status_check_in must be on_time or late",
		})
	}
	if r.StatusCheckOut != nil && !validator.IsInSlice(*r.StatusCheckOut, []string{string(CheckOutEarly), string(CheckOutOnTime), string(CheckOutLate)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status_check_out",
			Message: "status_check_out must be early, on_time or late",
		})
	}
	if r.Category != nil && !validator.IsInSlice(*r.Category, []string{
		string(CategoryDiscipline), string(CategoryUndiscipline), string(CategoryOvertime), string(CategoryUnclassified),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be discipline, undiscipline, overtime or unclassified",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
