package documents

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"skillmatrix-backend/internal/shared/storage/object"
	"skillmatrix-backend/internal/shared/util"
)

// Service contains business logic for documents.
type Service struct {
	Repo   Repo
	Mirror object.ObjectStore
}

// Create persists a document and mirrors its raw bytes to the upload
// mirror under <kind>/<filename>. Same-named mirror files are overwritten,
// matching the behavior of a plain directory of uploads.
func (s *Service) Create(ctx context.Context, kind Kind, filename string, content []byte) (Document, error) {
	if len(content) == 0 {
		return Document{}, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}
	sanitized, err := util.SanitizeFileName(filename)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	doc := Document{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     sanitized,
		Filename:  sanitized,
		Content:   content,
		Pages:     pageCount(content),
		SizeBytes: int64(len(content)),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	mirrorKey := kind.MirrorDir() + "/" + sanitized
	if _, err := s.Mirror.SaveWithKey(ctx, mirrorKey, "application/pdf", bytes.NewReader(content)); err != nil {
		return Document{}, fmt.Errorf("mirror %s: %w", mirrorKey, err)
	}

	return doc, nil
}

// GetResume returns a stored resume with its raw content.
func (s *Service) GetResume(ctx context.Context, id string) (Document, error) {
	if err := uuid.Validate(id); err != nil {
		return Document{}, ErrInvalidID
	}
	return s.Repo.GetByID(ctx, KindResume, id)
}

// ListMirroredResumes lists resume filenames present in the upload mirror.
func (s *Service) ListMirroredResumes(ctx context.Context) ([]string, error) {
	return s.Mirror.List(ctx, KindResume.MirrorDir())
}
