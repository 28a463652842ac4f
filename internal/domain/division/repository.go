package division

import (
	"context"

	"github.com/presensia/presensi-backend-go/internal/pkg/validator"
)

type DivisionRepository interface {
	Create(ctx context.Context, d Division) (Division, error)
	GetByID(ctx context.Context, id int64) (Division, error)
	FindByName(ctx context.Context, name string) (*Division, error)
	List(ctx context.Context, filter Filter) ([]Division, int64, error)
	Update(ctx context.Context, d Division) error
	Delete(ctx context.Context, id int64) error
}

// DivisionService defines business logic for division management.
type DivisionService interface {
	CreateDivision(ctx context.Context, req CreateRequest) (Division, error)
	GetDivision(ctx context.Context, id int64) (Division, error)
	ListDivisions(ctx context.Context, filter Filter) (ListResponse, error)
	UpdateDivision(ctx context.Context, req UpdateRequest) (Division, error)
	DeleteDivision(ctx context.Context, id int64) error
}

type Filter struct {
	OfficeID *int64
	Key      *string
	Page     int
	Limit    int
}

type ListResponse struct {
	TotalCount int64
	Page       int
	Limit      int
	TotalPages int
	Divisions  []Division
}

type CreateRequest struct {
	OfficeID int64  `json:"office_id"`
	Name     string `json:"name"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.OfficeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "office_id", Message: "office_id is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	ID       int64   `json:"-"`
	OfficeID *int64  `json:"office_id"`
	Name     *string `json:"name"`
}
