package documents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateDefaultsTitleToFilename(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := Document{
		ID:        "doc-1",
		Kind:      KindResume,
		Filename:  "alice.pdf",
		Content:   []byte("%PDF-1.4"),
		Pages:     2,
		SizeBytes: 8,
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(
			doc.ID,
			"resume",
			doc.Filename, // empty title falls back to filename
			doc.Filename,
			doc.Content,
			doc.Pages,
			doc.SizeBytes,
			doc.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT id, kind, title, filename, content, pages, size_bytes, created_at").
		WithArgs("missing", "resume").
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "title", "filename", "content", "pages", "size_bytes", "created_at"}))

	_, err = repo.GetByID(context.Background(), KindResume, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDRequiresMatchingKind(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC()

	mock.ExpectQuery("SELECT id, kind, title, filename, content, pages, size_bytes, created_at").
		WithArgs("doc-1", "job_description").
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "title", "filename", "content", "pages", "size_bytes", "created_at"}).
			AddRow("doc-1", "job_description", "backend.pdf", "backend.pdf", []byte("%PDF-1.4"), 1, 8, created))

	doc, err := repo.GetByID(context.Background(), KindJobDescription, "doc-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if doc.Kind != KindJobDescription || doc.Filename != "backend.pdf" {
		t.Errorf("doc = %+v", doc)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
