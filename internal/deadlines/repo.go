package deadlines

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("deadline not found")
	ErrInvalidInput    = errors.New("title and due_at are required")
	ErrEmptyPatch      = errors.New("no fields to update")
	ErrUnauthenticated = errors.New("missing authenticated user")
)

// UpdateParams is an explicit partial-field patch for a deadline.
type UpdateParams struct {
	Title     *string
	Note      *string
	DueAt     *time.Time
	Completed *bool
}

// Empty reports whether the patch would change nothing.
func (p UpdateParams) Empty() bool {
	return p.Title == nil && p.Note == nil && p.DueAt == nil && p.Completed == nil
}

// Repo defines persistence operations for deadlines.
type Repo interface {
	Create(ctx context.Context, d Deadline) error
	ListByCase(ctx context.Context, userID, caseID string) ([]Deadline, error)
	Update(ctx context.Context, userID, id string, patch UpdateParams) (Deadline, error)
	Delete(ctx context.Context, userID, id string) error
}
