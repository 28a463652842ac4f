package office

import (
	"context"

	"github.com/presensia/presensi-backend-go/internal/pkg/validator"
)

type OfficeRepository interface {
	Create(ctx context.Context, o Office) (Office, error)
	GetByID(ctx context.Context, id int64) (Office, error)
	List(ctx context.Context, page, limit int) ([]Office, int64, error)
	Update(ctx context.Context, o Office) error
	Delete(ctx context.Context, id int64) error
}

// OfficeService defines business logic for office management.
type OfficeService interface {
	CreateOffice(ctx context.Context, req CreateRequest) (Office, error)
	GetOffice(ctx context.Context, id int64) (Office, error)
	ListOffices(ctx context.Context, page, limit int) (ListResponse, error)
	UpdateOffice(ctx context.Context, req UpdateRequest) (Office, error)
	DeleteOffice(ctx context.Context, id int64) error
}

type ListResponse struct {
	TotalCount int64
	Page       int
	Limit      int
	TotalPages int
	Offices    []Office
}

type CreateRequest struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.City) {
		errs = append(errs, validator.ValidationError{Field: "city", Message: "city is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	ID      int64   `json:"-"`
	Name    *string `json:"name"`
	City    *string `json:"city"`
	Address *string `json:"address"`
}
