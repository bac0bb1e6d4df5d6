// Package minio implements the OBJECT_STORE_A backend on MinIO or any
// S3-compatible endpoint reachable through the minio client.
package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	pkglogger "github.com/National-Digital-Twin/federator-sub004/pkg/logger"
)

// Store implements repository.ObjectStore using MinIO.
type Store struct {
	client *minio.Client
	logger *pkglogger.Logger
}

// Config represents MinIO connection configuration
type Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
}

// NewStore creates a new MinIO object store.
func NewStore(cfg *Config, log *pkglogger.Logger) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &Store{client: client, logger: log}, nil
}

// OpenObject returns a streaming reader over the object and its size. The
// size comes from a stat on the open handle, so it reflects the object
// version being read.
func (s *Store) OpenObject(ctx context.Context, container, path string) (io.ReadCloser, int64, error) {
	obj, err := s.client.GetObject(ctx, container, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get object %s/%s: %w", container, path, err)
	}

	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		return nil, 0, fmt.Errorf("failed to stat object %s/%s: %w", container, path, err)
	}

	s.logger.Debug("Opened MinIO object",
		pkglogger.String("bucket", container),
		pkglogger.String("object", path),
		pkglogger.Int64("size", stat.Size),
	)

	return obj, stat.Size, nil
}
