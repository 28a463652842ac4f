package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/presensia/presensi-backend-go/internal/domain/unknownserial"
	"github.com/presensia/presensi-backend-go/internal/pkg/database"
)

type unknownSerialRepository struct {
	db *database.DB
}

func NewUnknownSerialRepository(db *database.DB) unknownserial.Repository {
	return &unknownSerialRepository{db: db}
}

// FindPending implements unknownserial.PendingRegistry.
func (r *unknownSerialRepository) FindPending(ctx context.Context, serialID string) (*unknownserial.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, serial_id, status, note, detected_at
		FROM unknown_serial_ids
		WHERE serial_id = $1 AND status = 'pending'
		LIMIT 1
	`

	var rec unknownserial.Record
	err := q.QueryRow(ctx, query, serialID).Scan(
		&rec.ID, &rec.SerialID, &rec.Status, &rec.Note, &rec.DetectedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find pending serial: %w", err)
	}

	return &rec, nil
}

// CreatePending implements unknownserial.PendingRegistry. A partial unique index on
// serial_id WHERE status = 'pending' keeps the registration idempotent under
// concurrent scans; losing the race is not an error.
func (r *unknownSerialRepository) CreatePending(ctx context.Context, serialID string, note *string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO unknown_serial_ids (serial_id, status, note)
		VALUES ($1, 'pending', $2)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query, serialID, note).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to create pending serial: %w", err)
	}

	return id, nil
}

// List implements unknownserial.Repository.
func (r *unknownSerialRepository) List(ctx context.Context, page, limit int) ([]unknownserial.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM unknown_serial_ids`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count unknown serials: %w", err)
	}

	if limit == 0 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := `
		SELECT id, serial_id, status, note, detected_at
		FROM unknown_serial_ids
		ORDER BY detected_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query unknown serials: %w", err)
	}
	defer rows.Close()

	var records []unknownserial.Record
	for rows.Next() {
		var rec unknownserial.Record
		if err := rows.Scan(&rec.ID, &rec.SerialID, &rec.Status, &rec.Note, &rec.DetectedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan unknown serial: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}

// UpdateStatus implements unknownserial.Repository.
func (r *unknownSerialRepository) UpdateStatus(ctx context.Context, id int64, status unknownserial.Status, note *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE unknown_serial_ids
		SET status = $1, note = COALESCE($2, note)
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, status, note, id)
	if err != nil {
		return fmt.Errorf("failed to update unknown serial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return unknownserial.ErrRecordNotFound
	}

	return nil
}

// Delete implements unknownserial.Repository.
func (r *unknownSerialRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM unknown_serial_ids WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete unknown serial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return unknownserial.ErrRecordNotFound
	}

	return nil
}
