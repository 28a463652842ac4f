package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/presensia/presensi-backend-go/internal/domain/office"
	"github.com/presensia/presensi-backend-go/internal/pkg/database"
)

type officeRepository struct {
	db *database.DB
}

func NewOfficeRepository(db *database.DB) office.OfficeRepository {
	return &officeRepository{db: db}
}

// Create implements office.OfficeRepository.
func (r *officeRepository) Create(ctx context.Context, o office.Office) (office.Office, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO offices (office_name, city, address)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, o.Name, o.City, o.Address).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return office.Office{}, office.ErrNameExists
		}
		return office.Office{}, fmt.Errorf("failed to create office: %w", err)
	}

	return o, nil
}

// GetByID implements office.OfficeRepository.
func (r *officeRepository) GetByID(ctx context.Context, id int64) (office.Office, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, office_name, city, address, created_at, updated_at FROM offices WHERE id = $1`

	var o office.Office
	err := q.QueryRow(ctx, query, id).Scan(&o.ID, &o.Name, &o.City, &o.Address, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return office.Office{}, office.ErrOfficeNotFound
		}
		return office.Office{}, fmt.Errorf("failed to get office: %w", err)
	}

	return o, nil
}

// List implements office.OfficeRepository.
func (r *officeRepository) List(ctx context.Context, page, limit int) ([]office.Office, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM offices`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count offices: %w", err)
	}

	if limit == 0 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := `
		SELECT id, office_name, city, address, created_at, updated_at
		FROM offices
		ORDER BY office_name ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query offices: %w", err)
	}
	defer rows.Close()

	var offices []office.Office
	for rows.Next() {
		var o office.Office
		if err := rows.Scan(&o.ID, &o.Name, &o.City, &o.Address, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan office: %w", err)
		}
		offices = append(offices, o)
	}

	return offices, total, nil
}

// Update implements office.OfficeRepository.
func (r *officeRepository) Update(ctx context.Context, o office.Office) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE offices
		SET office_name = $1, city = $2, address = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, o.Name, o.City, o.Address, o.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return office.ErrNameExists
		}
		return fmt.Errorf("failed to update office: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return office.ErrOfficeNotFound
	}

	return nil
}

// Delete implements office.OfficeRepository.
func (r *officeRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM offices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete office: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return office.ErrOfficeNotFound
	}

	return nil
}
