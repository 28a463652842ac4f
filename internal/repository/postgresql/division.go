package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/presensia/presensi-backend-go/internal/domain/division"
	"github.com/presensia/presensi-backend-go/internal/pkg/database"
)

type divisionRepository struct {
	db *database.DB
}

func NewDivisionRepository(db *database.DB) division.DivisionRepository {
	return &divisionRepository{db: db}
}

const divisionColumns = `d.id, d.office_id, d.division_name, d.created_at, d.updated_at`

// Create implements division.DivisionRepository.
func (r *divisionRepository) Create(ctx context.Context, d division.Division) (division.Division, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO divisions (office_id, division_name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, d.OfficeID, d.Name).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return division.Division{}, division.ErrNameExists
		}
		return division.Division{}, fmt.Errorf("failed to create division: %w", err)
	}

	return d, nil
}

// GetByID implements division.DivisionRepository.
func (r *divisionRepository) GetByID(ctx context.Context, id int64) (division.Division, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + divisionColumns + `, o.office_name
		FROM divisions d
		LEFT JOIN offices o ON o.id = d.office_id
		WHERE d.id = $1
	`

	var d division.Division
	err := q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.OfficeID, &d.Name, &d.CreatedAt, &d.UpdatedAt, &d.OfficeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return division.Division{}, division.ErrDivisionNotFound
		}
		return division.Division{}, fmt.Errorf("failed to get division: %w", err)
	}

	return d, nil
}

// FindByName implements division.DivisionRepository.
func (r *divisionRepository) FindByName(ctx context.Context, name string) (*division.Division, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + divisionColumns + `
		FROM divisions d
		WHERE d.division_name = $1
		LIMIT 1
	`

	var d division.Division
	err := q.QueryRow(ctx, query, name).Scan(&d.ID, &d.OfficeID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find division by name: %w", err)
	}

	return &d, nil
}

// List implements division.DivisionRepository.
func (r *divisionRepository) List(ctx context.Context, filter division.Filter) ([]division.Division, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.OfficeID != nil && *filter.OfficeID > 0 {
		baseWhere += fmt.Sprintf(" AND d.office_id = $%d", argIdx)
		args = append(args, *filter.OfficeID)
		argIdx++
	}
	if filter.Key != nil && *filter.Key != "" {
		baseWhere += fmt.Sprintf(" AND d.division_name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Key+"%")
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM divisions d WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count divisions: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+divisionColumns+`, o.office_name
		FROM divisions d
		LEFT JOIN offices o ON o.id = d.office_id
		WHERE %s
		ORDER BY d.division_name ASC
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
		return nil, 0, fmt.Errorf("failed to query divisions: %w", err)
	}
	defer rows.Close()

	var divisions []division.Division
	for rows.Next() {
		var d division.Division
		if err := rows.Scan(&d.ID, &d.OfficeID, &d.Name, &d.CreatedAt, &d.UpdatedAt, &d.OfficeName); err != nil {
			return nil, 0, fmt.Errorf("failed to scan division: %w", err)
		}
		divisions = append(divisions, d)
	}

	return divisions, total, nil
}

// Update implements division.DivisionRepository.
func (r *divisionRepository) Update(ctx context.Context, d division.Division) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE divisions
		SET office_id = $1, division_name = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, d.OfficeID, d.Name, d.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return division.ErrNameExists
		}
		return fmt.Errorf("failed to update division: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return division.ErrDivisionNotFound
	}

	return nil
}

// Delete implements division.DivisionRepository.
func (r *divisionRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM divisions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete division: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return division.ErrDivisionNotFound
	}

	return nil
}
