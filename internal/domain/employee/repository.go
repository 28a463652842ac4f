package employee

import "context"

// Directory is the read-only lookup surface the event gateway depends on.
type Directory interface {
	// FindBySerialID resolves a badge serial to an employee, nil when unknown.
	FindBySerialID(ctx context.Context, serialID string) (*Employee, error)

	// Exists reports whether the employee id is registered.
	Exists(ctx context.Context, id int64) (bool, error)
}

// EmployeeRepository defines data access for employees. It embeds Directory so the
// gateway can take the narrow interface while CRUD consumers take the full one.
type EmployeeRepository interface {
	Directory

	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)
	Update(ctx context.Context, e Employee) error
	Delete(ctx context.Context, id int64) error
	CountAll(ctx context.Context) (int64, error)
}

// EmployeeService defines business logic for employee management.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateRequest) (Employee, error)
	GetEmployee(ctx context.Context, id int64) (Employee, error)
	ListEmployees(ctx context.Context, filter Filter) (ListResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateRequest) (Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}
