package storage

import (
	"context"
	"io"
)

// Store defines the interface for the file backend the exporter writes the
// site into.
type Store interface {
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}
