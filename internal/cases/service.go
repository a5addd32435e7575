package cases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for cases.
type Service struct {
	Repo Repo
}

// List returns the caller's cases, newest first. The caller check runs
// before any store access.
func (s *Service) List(ctx context.Context, userID string) ([]Case, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUnauthenticated
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Get returns one case owned by the caller.
func (s *Service) Get(ctx context.Context, userID, caseID string) (Case, error) {
	if strings.TrimSpace(userID) == "" {
		return Case{}, ErrUnauthenticated
	}
	return s.Repo.GetByID(ctx, userID, caseID)
}

// Create inserts a case owned by the caller.
func (s *Service) Create(ctx context.Context, userID, name, caseNumber string) (Case, error) {
	if strings.TrimSpace(userID) == "" {
		return Case{}, ErrUnauthenticated
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Case{}, ErrInvalidInput
	}

	c := Case{
		ID:         uuid.NewString(),
		UserID:     userID,
		Name:       name,
		CaseNumber: strings.TrimSpace(caseNumber),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return Case{}, err
	}
	return c, nil
}
