package cases

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Case // userID -> cases
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Case)}
}

// Create stores a case for a user.
func (r *MemoryRepo) Create(ctx context.Context, c Case) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[c.UserID] = append(r.data[c.UserID], c)
	return nil
}

// GetByID returns a case by ID, scoped to its owner.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, caseID string) (Case, error) {
	if err := ctx.Err(); err != nil {
		return Case{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.data[userID] {
		if c.ID == caseID {
			return c, nil
		}
	}
	return Case{}, ErrNotFound
}

// ListByUser returns cases for a user, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Case, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Copy while holding the lock; Update mutates the backing array in place.
	r.mu.RLock()
	out := make([]Case, len(r.data[userID]))
	copy(out, r.data[userID])
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
