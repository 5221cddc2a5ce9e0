package generations

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

func TestPGRepoCreateStoresEmptyContactAsNull(t *testing.T) {
	repo, mock := newMockRepo(t)
	gen := Generation{
		ID:          "gen-1",
		ResumeText:  "Jan Kowalski\nBackend engineer.",
		CoverLetter: "Dear Hiring Manager,",
		FirstName:   "Jan",
		LastName:    "Kowalski",
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO generations").
		WithArgs(
			gen.ID,
			gen.ResumeText,
			gen.CoverLetter,
			"Jan",
			"Kowalski",
			nil, // address
			nil, // phone
			nil, // email
			gen.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), gen); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "resume_text", "cover_letter", "first_name", "last_name",
		"address", "phone", "email", "created_at",
	}).AddRow("gen-1", "resume", "letter", "Jan", "Kowalski", nil, "501 234 567", nil, created)

	mock.ExpectQuery("SELECT (.+) FROM generations").
		WithArgs("gen-1").
		WillReturnRows(rows)

	gen, err := repo.GetByID(context.Background(), "gen-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if gen.FirstName != "Jan" || gen.LastName != "Kowalski" {
		t.Fatalf("unexpected contact: %+v", gen)
	}
	if gen.Address != "" || gen.Email != "" {
		t.Fatalf("NULL columns should scan to empty strings: %+v", gen)
	}
	if gen.Phone != "501 234 567" {
		t.Fatalf("unexpected phone: %q", gen.Phone)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM generations").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "resume_text", "cover_letter", "first_name", "last_name",
			"address", "phone", "email", "created_at",
		}))

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListRecentClampsLimit(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "resume_text", "cover_letter", "first_name", "last_name",
		"address", "phone", "email", "created_at",
	}).
		AddRow("gen-2", "resume", "letter", nil, nil, nil, nil, nil, created).
		AddRow("gen-1", "resume", "letter", nil, nil, nil, nil, nil, created.Add(-time.Minute))

	mock.ExpectQuery("SELECT (.+) FROM generations ORDER BY created_at DESC").
		WithArgs(100).
		WillReturnRows(rows)

	out, err := repo.ListRecent(context.Background(), 5000)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[0].ID != "gen-2" {
		t.Fatalf("expected newest first, got %q", out[0].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
