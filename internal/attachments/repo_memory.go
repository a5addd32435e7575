package attachments

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Attachment // userID -> attachments
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Attachment)}
}

// Create stores an attachment for a user.
func (r *MemoryRepo) Create(ctx context.Context, a Attachment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[a.UserID] = append(r.data[a.UserID], a)
	return nil
}

// GetByID returns an attachment by ID, scoped to its owner.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, id string) (Attachment, error) {
	if err := ctx.Err(); err != nil {
		return Attachment{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.data[userID] {
		if a.ID == id {
			return a, nil
		}
	}
	return Attachment{}, ErrNotFound
}

// ListByCase returns attachments of one kind for a case, newest first.
func (r *MemoryRepo) ListByCase(ctx context.Context, userID, caseID string, kind Kind) ([]Attachment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Copy matching rows while holding the lock; Update mutates the backing
	// array in place.
	r.mu.RLock()
	var out []Attachment
	for _, a := range r.data[userID] {
		if a.CaseID == caseID && a.Kind == kind {
			out = append(out, a)
		}
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update applies a partial-field patch to one attachment.
func (r *MemoryRepo) Update(ctx context.Context, userID, id string, patch UpdateParams) (Attachment, error) {
	if err := ctx.Err(); err != nil {
		return Attachment{}, err
	}
	if patch.Empty() {
		return Attachment{}, ErrEmptyPatch
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	userAttachments := r.data[userID]
	for i := range userAttachments {
		if userAttachments[i].ID != id {
			continue
		}
		if patch.FileName != nil {
			userAttachments[i].FileName = *patch.FileName
		}
		if patch.CaseID != nil {
			userAttachments[i].CaseID = *patch.CaseID
		}
		r.data[userID] = userAttachments
		return userAttachments[i], nil
	}
	return Attachment{}, ErrNotFound
}

// Delete removes one attachment by ID. Deleting a non-existent ID is a no-op.
func (r *MemoryRepo) Delete(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	userAttachments := r.data[userID]
	for i := range userAttachments {
		if userAttachments[i].ID == id {
			r.data[userID] = append(userAttachments[:i], userAttachments[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
