package employee

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/presensia/presensi-backend-go/internal/domain/employee"
	"github.com/presensia/presensi-backend-go/internal/domain/unknownserial"
	"github.com/presensia/presensi-backend-go/internal/pkg/database"
	"github.com/presensia/presensi-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db             *database.DB
	repo           employee.EmployeeRepository
	unknownSerials unknownserial.Repository
}

func NewEmployeeService(db *database.DB, repo employee.EmployeeRepository, unknownSerials unknownserial.Repository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:             db,
		repo:           repo,
		unknownSerials: unknownSerials,
	}
}

// CreateEmployee implements employee.EmployeeService. If the badge serial was
// previously scanned while unregistered it sits in the review queue; registering the
// employee resolves that queue entry in the same transaction.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	serialID := employee.NormalizeSerial(req.SerialID)

	var created employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.Create(txCtx, employee.Employee{
			SerialID:     serialID,
			OfficeID:     req.OfficeID,
			DivisionID:   req.DivisionID,
			SupervisorID: req.SupervisorID,
			FullName:     strings.TrimSpace(req.FullName),
			Position:     strings.TrimSpace(req.Position),
			Email:        strings.ToLower(strings.TrimSpace(req.Email)),
			Phone:        strings.TrimSpace(req.Phone),
		})
		if err != nil {
			return err
		}

		pending, err := s.unknownSerials.FindPending(txCtx, serialID)
		if err != nil {
			return fmt.Errorf("failed to check unknown serial queue: %w", err)
		}
		if pending != nil {
			note := "registered as " + created.FullName
			if err := s.unknownSerials.UpdateStatus(txCtx, pending.ID, unknownserial.StatusAccepted, &note); err != nil {
				return fmt.Errorf("failed to resolve unknown serial: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.Filter) (employee.ListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	employees, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return employee.ListResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	return employee.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Employees:  employees,
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	current, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.SerialID != nil {
		current.SerialID = employee.NormalizeSerial(*req.SerialID)
	}
	if req.OfficeID != nil {
		current.OfficeID = *req.OfficeID
	}
	if req.DivisionID != nil {
		current.DivisionID = req.DivisionID
	}
	if req.SupervisorID != nil {
		current.SupervisorID = req.SupervisorID
	}
	if req.FullName != nil {
		current.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Position != nil {
		current.Position = strings.TrimSpace(*req.Position)
	}
	if req.Email != nil {
		current.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		current.Phone = strings.TrimSpace(*req.Phone)
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return employee.Employee{}, err
	}

	return s.repo.GetByID(ctx, req.ID)
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
