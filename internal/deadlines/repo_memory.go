package deadlines

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Deadline // userID -> deadlines
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Deadline)}
}

// Create stores a deadline for a user.
func (r *MemoryRepo) Create(ctx context.Context, d Deadline) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[d.UserID] = append(r.data[d.UserID], d)
	return nil
}

// ListByCase returns deadlines for a case, soonest due first.
func (r *MemoryRepo) ListByCase(ctx context.Context, userID, caseID string) ([]Deadline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Copy matching rows while holding the lock; Update mutates the backing
	// array in place.
	r.mu.RLock()
	var out []Deadline
	for _, d := range r.data[userID] {
		if d.CaseID == caseID {
			out = append(out, d)
		}
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		return out[i].DueAt.Before(out[j].DueAt)
	})
	return out, nil
}

// Update applies a partial-field patch to one deadline.
func (r *MemoryRepo) Update(ctx context.Context, userID, id string, patch UpdateParams) (Deadline, error) {
	if err := ctx.Err(); err != nil {
		return Deadline{}, err
	}
	if patch.Empty() {
		return Deadline{}, ErrEmptyPatch
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	userDeadlines := r.data[userID]
	for i := range userDeadlines {
		if userDeadlines[i].ID != id {
			continue
		}
		if patch.Title != nil {
			userDeadlines[i].Title = *patch.Title
		}
		if patch.Note != nil {
			userDeadlines[i].Note = *patch.Note
		}
		if patch.DueAt != nil {
			userDeadlines[i].DueAt = *patch.DueAt
		}
		if patch.Completed != nil {
			userDeadlines[i].Completed = *patch.Completed
		}
		r.data[userID] = userDeadlines
		return userDeadlines[i], nil
	}
	return Deadline{}, ErrNotFound
}

// Delete removes one deadline by ID. Deleting a non-existent ID is a no-op.
func (r *MemoryRepo) Delete(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	userDeadlines := r.data[userID]
	for i := range userDeadlines {
		if userDeadlines[i].ID == id {
			r.data[userID] = append(userDeadlines[:i], userDeadlines[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
