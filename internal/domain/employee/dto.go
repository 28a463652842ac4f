package employee

import (
	"github.com/presensia/presensi-backend-go/internal/pkg/validator"
)

type Filter struct {
	OfficeID   *int64
	DivisionID *int64
	Key        *string
	Page       int
	Limit      int
}

type ListResponse struct {
	TotalCount int64
	Page       int
	Limit      int
	TotalPages int
	Employees  []Employee
}

type CreateRequest struct {
	SerialID     string `json:"serial_id"`
	OfficeID     int64  `json:"office_id"`
	DivisionID   *int64 `json:"division_id"`
	SupervisorID *int64 `json:"supervisor_id"`
	FullName     string `json:"full_name"`
	Position     string `json:"position"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SerialID) {
		errs = append(errs, validator.ValidationError{Field: "serial_id", Message: "serial_id is required"})
	}
	if r.OfficeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "office_id", Message: "office_id is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if validator.IsEmpty(r.Email) || !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if !validator.IsEmpty(r.Phone) && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "invalid phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	ID           int64   `json:"-"`
	SerialID     *string `json:"serial_id"`
	OfficeID     *int64  `json:"office_id"`
	DivisionID   *int64  `json:"division_id"`
	SupervisorID *int64  `json:"supervisor_id"`
	FullName     *string `json:"full_name"`
	Position     *string `json:"position"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "invalid phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
