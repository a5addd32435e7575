package users

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no user row matches the id.
var ErrNotFound = errors.New("user not found")

// Repo persists user accounts.
type Repo interface {
	Upsert(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
}
