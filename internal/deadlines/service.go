package deadlines

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CaseChecker verifies that a case exists and is owned by the caller.
type CaseChecker interface {
	OwnsCase(ctx context.Context, userID, caseID string) error
}

// Service contains business logic for the case timeline.
type Service struct {
	Repo  Repo
	Cases CaseChecker
}

// List returns the timeline for a case, soonest due first.
func (s *Service) List(ctx context.Context, userID, caseID string) ([]Deadline, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUnauthenticated
	}
	if err := s.Cases.OwnsCase(ctx, userID, caseID); err != nil {
		return nil, err
	}
	return s.Repo.ListByCase(ctx, userID, caseID)
}

// Create adds a deadline to a case the caller owns.
func (s *Service) Create(ctx context.Context, userID, caseID, title, note string, dueAt time.Time) (Deadline, error) {
	if strings.TrimSpace(userID) == "" {
		return Deadline{}, ErrUnauthenticated
	}
	title = strings.TrimSpace(title)
	if title == "" || dueAt.IsZero() {
		return Deadline{}, ErrInvalidInput
	}
	if err := s.Cases.OwnsCase(ctx, userID, caseID); err != nil {
		return Deadline{}, err
	}

	d := Deadline{
		ID:        uuid.NewString(),
		CaseID:    caseID,
		UserID:    userID,
		Title:     title,
		Note:      strings.TrimSpace(note),
		DueAt:     dueAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, d); err != nil {
		return Deadline{}, err
	}
	return d, nil
}

// Update applies a partial-field patch to one deadline.
func (s *Service) Update(ctx context.Context, userID, id string, patch UpdateParams) (Deadline, error) {
	if strings.TrimSpace(userID) == "" {
		return Deadline{}, ErrUnauthenticated
	}
	return s.Repo.Update(ctx, userID, id, patch)
}

// Delete removes one deadline. Idempotent from the caller's view.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrUnauthenticated
	}
	return s.Repo.Delete(ctx, userID, id)
}
