package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/presensia/presensi-backend-go/internal/domain/employee"
	"github.com/presensia/presensi-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.serial_id, e.office_id, e.division_id, e.supervisor_id,
	e.full_name, e.position, e.email, e.phone, e.created_at, e.updated_at
`

// FindBySerialID implements employee.Directory. The serial column carries a unique
// index; nil means the badge is unregistered, not an error.
func (r *employeeRepository) FindBySerialID(ctx context.Context, serialID string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.serial_id = $1
		LIMIT 1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, serialID).Scan(
		&emp.ID, &emp.SerialID, &emp.OfficeID, &emp.DivisionID, &emp.SupervisorID,
		&emp.FullName, &emp.Position, &emp.Email, &emp.Phone, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee by serial: %w", err)
	}

	return &emp, nil
}

// Exists implements employee.Directory.
func (r *employeeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}

	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (serial_id, office_id, division_id, supervisor_id, full_name, position, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.SerialID, e.OfficeID, e.DivisionID, e.SupervisorID,
		e.FullName, e.Position, e.Email, e.Phone,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "employees_serial_id_key":
				return employee.Employee{}, employee.ErrSerialIDExists
			case "employees_email_key":
				return employee.Employee{}, employee.ErrEmailExists
			}
			return employee.Employee{}, employee.ErrSerialIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `,
		       o.office_name, o.city, o.address,
		       d.division_name
		FROM employees e
		LEFT JOIN offices o ON o.id = e.office_id
		LEFT JOIN divisions d ON d.id = e.division_id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.SerialID, &emp.OfficeID, &emp.DivisionID, &emp.SupervisorID,
		&emp.FullName, &emp.Position, &emp.Email, &emp.Phone, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.OfficeName, &emp.OfficeCity, &emp.OfficeAddress,
		&emp.DivisionName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.OfficeID != nil && *filter.OfficeID > 0 {
		baseWhere += fmt.Sprintf(" AND e.office_id = $%d", argIdx)
		args = append(args, *filter.OfficeID)
		argIdx++
	}
	if filter.DivisionID != nil && *filter.DivisionID > 0 {
		baseWhere += fmt.Sprintf(" AND e.division_id = $%d", argIdx)
		args = append(args, *filter.DivisionID)
		argIdx++
	}
	if filter.Key != nil && *filter.Key != "" {
		baseWhere += fmt.Sprintf(" AND (e.full_name ILIKE $%d OR e.email ILIKE $%d OR e.serial_id ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+*filter.Key+"%")
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM employees e WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+employeeColumns+`,
		       o.office_name, o.city, o.address,
		       d.division_name
		FROM employees e
		LEFT JOIN offices o ON o.id = e.office_id
		LEFT JOIN divisions d ON d.id = e.division_id
		WHERE %s
		ORDER BY e.full_name ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.SerialID, &emp.OfficeID, &emp.DivisionID, &emp.SupervisorID,
			&emp.FullName, &emp.Position, &emp.Email, &emp.Phone, &emp.CreatedAt, &emp.UpdatedAt,
			&emp.OfficeName, &emp.OfficeCity, &emp.OfficeAddress,
			&emp.DivisionName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET serial_id = $1, office_id = $2, division_id = $3, supervisor_id = $4,
		    full_name = $5, position = $6, email = $7, phone = $8, updated_at = NOW()
		WHERE id = $9
	`

	tag, err := q.Exec(ctx, query,
		e.SerialID, e.OfficeID, e.DivisionID, e.SupervisorID,
		e.FullName, e.Position, e.Email, e.Phone, e.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrSerialIDExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// CountAll implements employee.EmployeeRepository.
func (r *employeeRepository) CountAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return total, nil
}
