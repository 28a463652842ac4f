package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/presensia/presensi-backend-go/internal/domain/leave"
	"github.com/presensia/presensi-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `l.id, l.employee_id, l.start_date, l.end_date, l.leave_type, l.reason, l.created_at`

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO on_leave (employee_id, start_date, end_date, leave_type, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, l.EmployeeID, l.StartDate, l.EndDate, l.LeaveType, l.Reason).
		Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return l, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id int64) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, e.full_name AS employee_name
		FROM on_leave l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	var l leave.Leave
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.LeaveType, &l.Reason, &l.CreatedAt,
		&l.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave: %w", err)
	}

	return l, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context, page, limit int) ([]leave.Leave, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM on_leave`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leaves: %w", err)
	}

	if limit == 0 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := `
		SELECT ` + leaveColumns + `, e.full_name AS employee_name
		FROM on_leave l
		LEFT JOIN employees e ON e.id = l.employee_id
		ORDER BY l.start_date DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var l leave.Leave
		err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.LeaveType, &l.Reason, &l.CreatedAt,
			&l.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, total, nil
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM on_leave WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

// ExistsInRange implements leave.LeaveRepository. Two inclusive date ranges
// intersect iff each starts no later than the other ends.
func (r *leaveRepository) ExistsInRange(ctx context.Context, employeeID int64, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM on_leave
			WHERE employee_id = $1
			  AND start_date <= $3::date
			  AND end_date >= $2::date
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping leave: %w", err)
	}

	return exists, nil
}

// CountOnLeaveToday implements leave.LeaveRepository.
func (r *leaveRepository) CountOnLeaveToday(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT employee_id)
		FROM on_leave
		WHERE CURRENT_DATE BETWEEN start_date AND end_date
	`

	var total int64
	if err := q.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees on leave: %w", err)
	}

	return total, nil
}
