package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    kind,
    title,
    filename,
    content,
    pages,
    size_bytes,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	title := doc.Title
	if title == "" {
		title = doc.Filename
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		string(doc.Kind),
		title,
		doc.Filename,
		doc.Content,
		doc.Pages,
		doc.SizeBytes,
		doc.CreatedAt,
	)
	return err
}

// GetByID fetches a document of the given kind, including its raw content.
func (r *PGRepo) GetByID(ctx context.Context, kind Kind, id string) (Document, error) {
	const query = `
SELECT id, kind, title, filename, content, pages, size_bytes, created_at
FROM documents
WHERE id = $1 AND kind = $2
LIMIT 1`
	var doc Document
	var kindRaw string
	err := r.DB.QueryRowContext(ctx, query, id, string(kind)).Scan(
		&doc.ID,
		&kindRaw,
		&doc.Title,
		&doc.Filename,
		&doc.Content,
		&doc.Pages,
		&doc.SizeBytes,
		&doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	doc.Kind = Kind(kindRaw)
	return doc, nil
}

var _ Repo = (*PGRepo)(nil)
