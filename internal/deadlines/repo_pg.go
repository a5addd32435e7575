package deadlines

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const deadlineColumns = "id, case_id, user_id, title, note, due_at, completed, created_at"

// Create inserts a new deadline.
func (r *PGRepo) Create(ctx context.Context, d Deadline) error {
	const query = `
INSERT INTO deadlines (id, case_id, user_id, title, note, due_at, completed, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var note sql.NullString
	if d.Note != "" {
		note = sql.NullString{String: d.Note, Valid: true}
	}

	_, err := r.DB.ExecContext(ctx, query,
		d.ID,
		d.CaseID,
		d.UserID,
		d.Title,
		note,
		d.DueAt,
		d.Completed,
		d.CreatedAt,
	)
	return err
}

// ListByCase lists deadlines for a case, soonest due first.
func (r *PGRepo) ListByCase(ctx context.Context, userID, caseID string) ([]Deadline, error) {
	query := `
SELECT ` + deadlineColumns + `
FROM deadlines
WHERE user_id = $1 AND case_id = $2
ORDER BY due_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, userID, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Deadline
	for rows.Next() {
		d, err := scanDeadline(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Update applies a partial-field patch to one deadline.
func (r *PGRepo) Update(ctx context.Context, userID, id string, patch UpdateParams) (Deadline, error) {
	if patch.Empty() {
		return Deadline{}, ErrEmptyPatch
	}

	sets := make([]string, 0, 4)
	args := make([]any, 0, 6)
	idx := 1

	if patch.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", idx))
		args = append(args, *patch.Title)
		idx++
	}
	if patch.Note != nil {
		sets = append(sets, fmt.Sprintf("note = $%d", idx))
		args = append(args, *patch.Note)
		idx++
	}
	if patch.DueAt != nil {
		sets = append(sets, fmt.Sprintf("due_at = $%d", idx))
		args = append(args, *patch.DueAt)
		idx++
	}
	if patch.Completed != nil {
		sets = append(sets, fmt.Sprintf("completed = $%d", idx))
		args = append(args, *patch.Completed)
		idx++
	}

	query := fmt.Sprintf(`
UPDATE deadlines
SET %s
WHERE user_id = $%d AND id = $%d
RETURNING %s`, strings.Join(sets, ", "), idx, idx+1, deadlineColumns)
	args = append(args, userID, id)

	row := r.DB.QueryRowContext(ctx, query, args...)
	d, err := scanDeadline(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Deadline{}, ErrNotFound
		}
		return Deadline{}, err
	}
	return d, nil
}

// Delete removes one deadline by ID. Deleting a non-existent ID is not an error.
func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `
DELETE FROM deadlines
WHERE user_id = $1 AND id = $2`
	_, err := r.DB.ExecContext(ctx, query, userID, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeadline(row rowScanner) (Deadline, error) {
	var d Deadline
	var note sql.NullString
	err := row.Scan(
		&d.ID,
		&d.CaseID,
		&d.UserID,
		&d.Title,
		&note,
		&d.DueAt,
		&d.Completed,
		&d.CreatedAt,
	)
	if err != nil {
		return Deadline{}, err
	}
	if note.Valid {
		d.Note = note.String
	}
	return d, nil
}

var _ Repo = (*PGRepo)(nil)
