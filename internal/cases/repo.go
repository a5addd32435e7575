package cases

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("case not found")
	ErrInvalidInput    = errors.New("case name is required")
	ErrUnauthenticated = errors.New("missing authenticated user")
)

// Repo defines persistence operations for cases.
type Repo interface {
	Create(ctx context.Context, c Case) error
	GetByID(ctx context.Context, userID, caseID string) (Case, error)
	ListByUser(ctx context.Context, userID string) ([]Case, error)
}
