package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for the raw upload mirror.
type ObjectStore interface {
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	List(ctx context.Context, prefix string) ([]string, error)
}
