package user

import (
	"context"

	"github.com/presensia/presensi-backend-go/internal/pkg/validator"
)

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	List(ctx context.Context, page, limit int) ([]User, int64, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id int64) error
}

// UserService defines business logic for account management. All operations are
// admin-only; enforcement sits in the role middleware.
type UserService interface {
	CreateUser(ctx context.Context, req CreateRequest) (User, error)
	GetUser(ctx context.Context, id int64) (User, error)
	ListUsers(ctx context.Context, page, limit int) (ListResponse, error)
	UpdateUser(ctx context.Context, req UpdateRequest) (User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type ListResponse struct {
	TotalCount int64
	Page       int
	Limit      int
	TotalPages int
	Users      []User
}

type CreateRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	EmployeeID *int64 `json:"employee_id"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username is required"})
	}
	if validator.IsEmpty(r.Email) || !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if !validator.IsInSlice(r.Role, []string{string(RoleAdmin), string(RoleOperator)}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be admin or operator"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	ID         int64   `json:"-"`
	Username   *string `json:"username"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	Role       *string `json:"role"`
	EmployeeID *int64  `json:"employee_id"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email"})
	}
	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleAdmin), string(RoleOperator)}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be admin or operator"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
