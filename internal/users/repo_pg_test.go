package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoUpsertSendsProfileColumns(t *testing.T) {
	repo, mock := newMockRepo(t)

	user := User{
		ID:         "google:123",
		Email:      "parent@example.com",
		FullName:   "Pat Parent",
		PictureURL: "https://lh3.example.com/p.png",
	}
	mock.ExpectExec(`(?s)INSERT INTO users.+ON CONFLICT \(id\) DO UPDATE`).
		WithArgs(user.ID, user.Email, user.FullName, user.PictureURL).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), user); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpsertStoresEmptyProfileFieldsAsNull(t *testing.T) {
	repo, mock := newMockRepo(t)

	user := User{ID: "google:123", Email: "parent@example.com"}
	mock.ExpectExec(`(?s)INSERT INTO users.+ON CONFLICT \(id\) DO UPDATE`).
		WithArgs(user.ID, user.Email, nil, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), user); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDScansNullProfileFields(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "email", "full_name", "picture_url", "created_at", "updated_at"}).
		AddRow("google:123", "parent@example.com", nil, nil, now, now)
	mock.ExpectQuery(`(?s)SELECT .+ FROM users.+WHERE id = \$1`).
		WithArgs("google:123").
		WillReturnRows(rows)

	out, err := repo.GetByID(context.Background(), "google:123")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if out.Email != "parent@example.com" || out.FullName != "" || out.PictureURL != "" {
		t.Fatalf("row mis-scanned: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDMissingIsNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`(?s)SELECT .+ FROM users.+WHERE id = \$1`).
		WithArgs("google:missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "google:missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
