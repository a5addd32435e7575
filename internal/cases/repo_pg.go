package cases

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new case.
func (r *PGRepo) Create(ctx context.Context, c Case) error {
	const query = `
INSERT INTO cases (id, user_id, name, case_number, created_at)
VALUES ($1, $2, $3, $4, $5)`

	var caseNumber sql.NullString
	if c.CaseNumber != "" {
		caseNumber = sql.NullString{String: c.CaseNumber, Valid: true}
	}

	_, err := r.DB.ExecContext(ctx, query, c.ID, c.UserID, c.Name, caseNumber, c.CreatedAt)
	return err
}

// GetByID fetches a case by ID, scoped to its owner.
func (r *PGRepo) GetByID(ctx context.Context, userID, caseID string) (Case, error) {
	const query = `
SELECT id, user_id, name, case_number, created_at
FROM cases
WHERE user_id = $1 AND id = $2
LIMIT 1`

	var c Case
	var caseNumber sql.NullString
	err := r.DB.QueryRowContext(ctx, query, userID, caseID).Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&caseNumber,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Case{}, ErrNotFound
		}
		return Case{}, err
	}
	if caseNumber.Valid {
		c.CaseNumber = caseNumber.String
	}
	return c, nil
}

// ListByUser lists cases for a user, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Case, error) {
	const query = `
SELECT id, user_id, name, case_number, created_at
FROM cases
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Case
	for rows.Next() {
		var c Case
		var caseNumber sql.NullString
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &caseNumber, &c.CreatedAt); err != nil {
			return nil, err
		}
		if caseNumber.Valid {
			c.CaseNumber = caseNumber.String
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
