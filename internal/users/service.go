// Package users stores the accounts created by Google sign-in and serves the
// /me endpoint.
package users

import "context"

// Service wraps the user repo.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Upsert creates or refreshes the account row after a sign-in.
func (s *Service) Upsert(ctx context.Context, user User) error {
	return s.Repo.Upsert(ctx, user)
}

// GetByID loads a user account.
func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	return s.Repo.GetByID(ctx, userID)
}
