package deadlines

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

func deadlineRows(d Deadline) *sqlmock.Rows {
	var note any
	if d.Note != "" {
		note = d.Note
	}
	return sqlmock.NewRows([]string{
		"id", "case_id", "user_id", "title", "note", "due_at", "completed", "created_at",
	}).AddRow(d.ID, d.CaseID, d.UserID, d.Title, note, d.DueAt, d.Completed, d.CreatedAt)
}

func TestPGRepoCreateStoresEmptyNoteAsNull(t *testing.T) {
	repo, mock := newMockRepo(t)

	d := Deadline{
		ID:        "dl-1",
		CaseID:    "case-1",
		UserID:    "user-1",
		Title:     "Case plan due",
		DueAt:     time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC),
		CreatedAt: time.Now().UTC(),
	}
	mock.ExpectExec("INSERT INTO deadlines").
		WithArgs(d.ID, d.CaseID, d.UserID, d.Title, nil, d.DueAt, false, d.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), d); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByCaseOrdersSoonestFirst(t *testing.T) {
	repo, mock := newMockRepo(t)

	sooner := Deadline{ID: "dl-1", CaseID: "case-1", UserID: "user-1", Title: "Case plan due",
		DueAt: time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC), CreatedAt: time.Now().UTC()}
	later := Deadline{ID: "dl-2", CaseID: "case-1", UserID: "user-1", Title: "Judicial review",
		Note:  "bring the visitation log",
		DueAt: time.Date(2026, 9, 20, 9, 0, 0, 0, time.UTC), CreatedAt: time.Now().UTC()}

	rows := deadlineRows(sooner).
		AddRow(later.ID, later.CaseID, later.UserID, later.Title, later.Note,
			later.DueAt, later.Completed, later.CreatedAt)
	mock.ExpectQuery(`(?s)SELECT .+ FROM deadlines.+WHERE user_id = \$1 AND case_id = \$2.+ORDER BY due_at ASC`).
		WithArgs("user-1", "case-1").
		WillReturnRows(rows)

	out, err := repo.ListByCase(context.Background(), "user-1", "case-1")
	if err != nil {
		t.Fatalf("ListByCase: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[0].ID != "dl-1" || out[1].ID != "dl-2" {
		t.Fatalf("rows out of order: %q then %q", out[0].ID, out[1].ID)
	}
	if out[0].Note != "" || out[1].Note != "bring the visitation log" {
		t.Fatalf("notes mis-scanned: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateSingleFieldPlaceholders(t *testing.T) {
	repo, mock := newMockRepo(t)

	done := true
	updated := Deadline{ID: "dl-1", CaseID: "case-1", UserID: "user-1", Title: "Case plan due",
		DueAt: time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC), Completed: done,
		CreatedAt: time.Now().UTC()}

	mock.ExpectQuery(`(?s)UPDATE deadlines.+SET completed = \$1.+WHERE user_id = \$2 AND id = \$3.+RETURNING`).
		WithArgs(done, "user-1", "dl-1").
		WillReturnRows(deadlineRows(updated))

	out, err := repo.Update(context.Background(), "user-1", "dl-1", UpdateParams{Completed: &done})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !out.Completed {
		t.Fatalf("patch not applied: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateNumbersEveryPatchedField(t *testing.T) {
	repo, mock := newMockRepo(t)

	title := "Amended case plan due"
	note := "see amended order"
	dueAt := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	done := false
	updated := Deadline{ID: "dl-1", CaseID: "case-1", UserID: "user-1", Title: title,
		Note: note, DueAt: dueAt, Completed: done, CreatedAt: time.Now().UTC()}

	mock.ExpectQuery(`(?s)UPDATE deadlines.+SET title = \$1, note = \$2, due_at = \$3, completed = \$4.+WHERE user_id = \$5 AND id = \$6.+RETURNING`).
		WithArgs(title, note, dueAt, done, "user-1", "dl-1").
		WillReturnRows(deadlineRows(updated))

	out, err := repo.Update(context.Background(), "user-1", "dl-1",
		UpdateParams{Title: &title, Note: &note, DueAt: &dueAt, Completed: &done})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if out.Title != title || out.Note != note || !out.DueAt.Equal(dueAt) {
		t.Fatalf("patch not applied: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateZeroRowsIsNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	done := true
	mock.ExpectQuery(`(?s)UPDATE deadlines.+RETURNING`).
		WithArgs(done, "user-1", "missing-id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Update(context.Background(), "user-1", "missing-id", UpdateParams{Completed: &done})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateEmptyPatchNeverQueries(t *testing.T) {
	repo, mock := newMockRepo(t)

	_, err := repo.Update(context.Background(), "user-1", "dl-1", UpdateParams{})
	if !errors.Is(err, ErrEmptyPatch) {
		t.Fatalf("expected ErrEmptyPatch, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoDeleteIgnoresRowCount(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM deadlines").
		WithArgs("user-1", "missing-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "user-1", "missing-id"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
