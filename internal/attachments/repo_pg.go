package attachments

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

const attachmentColumns = "id, case_id, user_id, kind, file_name, storage_key, storage_url, size_bytes, mime_type, created_at"

// Create inserts a new attachment row.
func (r *PGRepo) Create(ctx context.Context, a Attachment) error {
	const query = `
INSERT INTO attachments (id, case_id, user_id, kind, file_name, storage_key, storage_url, size_bytes, mime_type, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	var mimeType sql.NullString
	if a.MimeType != "" {
		mimeType = sql.NullString{String: a.MimeType, Valid: true}
	}

	_, err := r.DB.ExecContext(ctx, query,
		a.ID,
		a.CaseID,
		a.UserID,
		string(a.Kind),
		a.FileName,
		a.StorageKey,
		a.StorageURL,
		a.SizeBytes,
		mimeType,
		a.CreatedAt,
	)
	return err
}

// GetByID fetches an attachment by ID, scoped to its owner.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (Attachment, error) {
	query := `
SELECT ` + attachmentColumns + `
FROM attachments
WHERE user_id = $1 AND id = $2
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, userID, id)
	a, err := scanAttachment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Attachment{}, ErrNotFound
		}
		return Attachment{}, err
	}
	return a, nil
}

// ListByCase lists attachments of one kind for a case, newest first.
func (r *PGRepo) ListByCase(ctx context.Context, userID, caseID string, kind Kind) ([]Attachment, error) {
	query := `
SELECT ` + attachmentColumns + `
FROM attachments
WHERE user_id = $1 AND case_id = $2 AND kind = $3
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID, caseID, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Attachment
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update applies a partial-field patch to one row. Zero rows matched is a
// distinct not-found outcome, not a generic store failure.
func (r *PGRepo) Update(ctx context.Context, userID, id string, patch UpdateParams) (Attachment, error) {
	if patch.Empty() {
		return Attachment{}, ErrEmptyPatch
	}

	sets := make([]string, 0, 2)
	args := make([]any, 0, 4)
	idx := 1

	if patch.FileName != nil {
		sets = append(sets, fmt.Sprintf("file_name = $%d", idx))
		args = append(args, *patch.FileName)
		idx++
	}
	if patch.CaseID != nil {
		sets = append(sets, fmt.Sprintf("case_id = $%d", idx))
		args = append(args, *patch.CaseID)
		idx++
	}

	query := fmt.Sprintf(`
UPDATE attachments
SET %s
WHERE user_id = $%d AND id = $%d
RETURNING %s`, strings.Join(sets, ", "), idx, idx+1, attachmentColumns)
	args = append(args, userID, id)

	row := r.DB.QueryRowContext(ctx, query, args...)
	a, err := scanAttachment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Attachment{}, ErrNotFound
		}
		return Attachment{}, err
	}
	return a, nil
}

// Delete removes one row by ID. Deleting a non-existent ID is not an error.
func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `
DELETE FROM attachments
WHERE user_id = $1 AND id = $2`
	_, err := r.DB.ExecContext(ctx, query, userID, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttachment(row rowScanner) (Attachment, error) {
	var a Attachment
	var kind string
	var mimeType sql.NullString
	err := row.Scan(
		&a.ID,
		&a.CaseID,
		&a.UserID,
		&kind,
		&a.FileName,
		&a.StorageKey,
		&a.StorageURL,
		&a.SizeBytes,
		&mimeType,
		&a.CreatedAt,
	)
	if err != nil {
		return Attachment{}, err
	}
	a.Kind = Kind(kind)
	if mimeType.Valid {
		a.MimeType = mimeType.String
	}
	return a, nil
}

var _ Repo = (*PGRepo)(nil)
