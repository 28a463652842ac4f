package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/presensia/presensi-backend-go/internal/domain/attendance"
	"github.com/presensia/presensi-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.RecordStore {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.device_code, a.check_in, a.check_out,
	a.status_check_in, a.status_check_out, a.category,
	a.created_at, a.updated_at
`

// FindForDay implements attendance.RecordStore.
func (r *attendanceRepository) FindForDay(ctx context.Context, employeeID int64, day time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.check_in::date = $2::date
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, day).Scan(
		&rec.ID, &rec.EmployeeID, &rec.DeviceCode, &rec.CheckIn, &rec.CheckOut,
		&rec.StatusCheckIn, &rec.StatusCheckOut, &rec.Category,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance for day: %w", err)
	}

	return &rec, nil
}

// Insert implements attendance.RecordStore. A unique index on
// (employee_id, (check_in::date)) backs the one-record-per-day invariant; its
// violation surfaces as ErrDuplicateDay.
func (r *attendanceRepository) Insert(ctx context.Context, employeeID int64, deviceCode *string, checkIn time.Time, status attendance.CheckInStatus) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, device_code, check_in, status_check_in)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query, employeeID, deviceCode, checkIn, status).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, attendance.ErrDuplicateDay
		}
		return 0, fmt.Errorf("failed to insert attendance: %w", err)
	}

	return id, nil
}

// CompleteCheckout implements attendance.RecordStore. The check_out IS NULL guard
// makes the write race-safe: of N concurrent check-outs exactly one matches.
func (r *attendanceRepository) CompleteCheckout(ctx context.Context, employeeID int64, day time.Time, checkOut time.Time, status attendance.CheckOutStatus, category attendance.Category) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out = $1, status_check_out = $2, category = $3, updated_at = NOW()
		WHERE employee_id = $4
		  AND check_in::date = $5::date
		  AND check_out IS NULL
	`

	tag, err := q.Exec(ctx, query, checkOut, status, category, employeeID, day)
	if err != nil {
		return false, fmt.Errorf("failed to complete checkout: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetByID implements attendance.RecordStore.
func (r *attendanceRepository) GetByID(ctx context.Context, id int64) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.DeviceCode, &rec.CheckIn, &rec.CheckOut,
		&rec.StatusCheckIn, &rec.StatusCheckOut, &rec.Category,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return rec, nil
}

// Update implements attendance.RecordStore.
func (r *attendanceRepository) Update(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_in = $1, check_out = $2, status_check_in = $3,
		    status_check_out = $4, category = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		record.CheckIn, record.CheckOut, record.StatusCheckIn,
		record.StatusCheckOut, record.Category, record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.RecordStore.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID > 0 {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND a.check_in::date = $%d::date", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.check_in::date >= $%d::date", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.check_in::date <= $%d::date", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Category != nil && *filter.Category != "" {
		baseWhere += fmt.Sprintf(" AND a.category = $%d", argIdx)
		args = append(args, *filter.Category)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM attendances a WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`, e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.check_in DESC
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
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.DeviceCode, &rec.CheckIn, &rec.CheckOut,
			&rec.StatusCheckIn, &rec.StatusCheckOut, &rec.Category,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}

// Summary implements attendance.RecordStore.
func (r *attendanceRepository) Summary(ctx context.Context) (attendance.SummaryCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status_check_in = 'on_time'),
		       COUNT(*) FILTER (WHERE status_check_in = 'late')
		FROM attendances
		WHERE check_in::date = CURRENT_DATE
	`

	var counts attendance.SummaryCounts
	err := q.QueryRow(ctx, query).Scan(&counts.Present, &counts.OnTime, &counts.Late)
	if err != nil {
		return attendance.SummaryCounts{}, fmt.Errorf("failed to count today's attendances: %w", err)
	}

	return counts, nil
}
