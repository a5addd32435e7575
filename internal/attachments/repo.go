package attachments

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("attachment not found")
	ErrNoFile          = errors.New("no file selected")
	ErrCaseRequired    = errors.New("case_id is required")
	ErrInvalidCaseID   = errors.New("invalid case_id")
	ErrEmptyPatch      = errors.New("no fields to update")
	ErrUnauthenticated = errors.New("missing authenticated user")
)

// UpdateParams is an explicit partial-field patch. Nil fields are left
// untouched; unknown columns cannot be smuggled in.
type UpdateParams struct {
	FileName *string
	CaseID   *string
}

// Empty reports whether the patch would change nothing.
func (p UpdateParams) Empty() bool {
	return p.FileName == nil && p.CaseID == nil
}

// Repo defines persistence operations for attachments. Every operation is
// scoped to the owning user.
type Repo interface {
	Create(ctx context.Context, a Attachment) error
	GetByID(ctx context.Context, userID, id string) (Attachment, error)
	ListByCase(ctx context.Context, userID, caseID string, kind Kind) ([]Attachment, error)
	Update(ctx context.Context, userID, id string, patch UpdateParams) (Attachment, error)
	Delete(ctx context.Context, userID, id string) error
}
