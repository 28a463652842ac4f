package device

import (
	"github.com/presensia/presensi-backend-go/internal/pkg/validator"
)

type Filter struct {
	Key   *string
	Page  int
	Limit int
}

type ListResponse struct {
	TotalCount int64
	Page       int
	Limit      int
	TotalPages int
	Devices    []Device
}

type CreateRequest struct {
	DeviceCode string `json:"device_code"`
	DeviceName string `json:"device_name"`
	Status     string `json:"status"`
	Location   string `json:"location"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DeviceCode) {
		errs = append(errs, validator.ValidationError{Field: "device_code", Message: "device_code is required"})
	}
	if validator.IsEmpty(r.DeviceName) {
		errs = append(errs, validator.ValidationError{Field: "device_name", Message: "device_name is required"})
	}
	if !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be active or inactive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	ID         int64   `json:"-"`
	DeviceName *string `json:"device_name"`
	Status     *string `json:"status"`
	Location   *string `json:"location"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be active or inactive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
