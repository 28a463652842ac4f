package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/presensia/presensi-backend-go/internal/domain/device"
	"github.com/presensia/presensi-backend-go/internal/pkg/database"
)

type deviceRepository struct {
	db *database.DB
}

func NewDeviceRepository(db *database.DB) device.DeviceRepository {
	return &deviceRepository{db: db}
}

const deviceColumns = `id, device_code, device_name, status, location, created_at, updated_at`

// FindByCode implements device.Registry.
func (r *deviceRepository) FindByCode(ctx context.Context, code string) (*device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deviceColumns + ` FROM devices WHERE device_code = $1 LIMIT 1`

	var d device.Device
	err := q.QueryRow(ctx, query, code).Scan(
		&d.ID, &d.DeviceCode, &d.DeviceName, &d.Status, &d.Location, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find device by code: %w", err)
	}

	return &d, nil
}

// Create implements device.DeviceRepository.
func (r *deviceRepository) Create(ctx context.Context, d device.Device) (device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO devices (device_code, device_name, status, location)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, d.DeviceCode, d.DeviceName, d.Status, d.Location).
		Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return device.Device{}, device.ErrDeviceCodeExists
		}
		return device.Device{}, fmt.Errorf("failed to create device: %w", err)
	}

	return d, nil
}

// GetByID implements device.DeviceRepository.
func (r *deviceRepository) GetByID(ctx context.Context, id int64) (device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`

	var d device.Device
	err := q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.DeviceCode, &d.DeviceName, &d.Status, &d.Location, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return device.Device{}, device.ErrDeviceNotFound
		}
		return device.Device{}, fmt.Errorf("failed to get device: %w", err)
	}

	return d, nil
}

// List implements device.DeviceRepository.
func (r *deviceRepository) List(ctx context.Context, filter device.Filter) ([]device.Device, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Key != nil && *filter.Key != "" {
		baseWhere += fmt.Sprintf(" AND (device_code ILIKE $%d OR device_name ILIKE $%d OR location ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+*filter.Key+"%")
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM devices WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count devices: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+deviceColumns+`
		FROM devices
		WHERE %s
		ORDER BY device_name ASC
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
		return nil, 0, fmt.Errorf("failed to query devices: %w", err)
	}
	defer rows.Close()

	var devices []device.Device
	for rows.Next() {
		var d device.Device
		err := rows.Scan(&d.ID, &d.DeviceCode, &d.DeviceName, &d.Status, &d.Location, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, d)
	}

	return devices, total, nil
}

// Update implements device.DeviceRepository.
func (r *deviceRepository) Update(ctx context.Context, d device.Device) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE devices
		SET device_name = $1, status = $2, location = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, d.DeviceName, d.Status, d.Location, d.ID)
	if err != nil {
		return fmt.Errorf("failed to update device: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return device.ErrDeviceNotFound
	}

	return nil
}

// Delete implements device.DeviceRepository.
func (r *deviceRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return device.ErrDeviceNotFound
	}

	return nil
}
