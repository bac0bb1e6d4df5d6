package repository

import (
	"context"
	"io"
)

// ObjectStore provides read access to file bytes for bulk transfers.
// Implementations exist for local disk, S3 and MinIO backends.
type ObjectStore interface {
	// OpenObject returns a reader over the object's bytes and its total
	// size. The caller owns the reader and must close it.
	OpenObject(ctx context.Context, container, path string) (io.ReadCloser, int64, error)
}
