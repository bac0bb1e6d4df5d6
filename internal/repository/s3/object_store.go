// Package s3 implements the OBJECT_STORE_B backend on Amazon S3 or an
// S3-compatible endpoint via the AWS SDK.
package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/National-Digital-Twin/federator-sub004/pkg/logger"
)

// Store implements repository.ObjectStore using the AWS S3 SDK.
type Store struct {
	client *s3.Client
	logger *logger.Logger
}

// Config represents S3 connection configuration. Endpoint is optional and
// points the client at an S3-compatible service for testing.
type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	UsePathStyle    bool
}

// NewStore creates a new S3 object store.
func NewStore(ctx context.Context, cfg *Config, log *logger.Logger) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("s3 region is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &Store{client: client, logger: log}, nil
}

// OpenObject returns the object body and its content length.
func (s *Store) OpenObject(ctx context.Context, container, path string) (io.ReadCloser, int64, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(container),
		Key:    aws.String(path),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get object %s/%s: %w", container, path, err)
	}

	size := aws.ToInt64(out.ContentLength)

	s.logger.Debug("Opened S3 object",
		logger.String("bucket", container),
		logger.String("key", path),
		logger.Int64("size", size),
	)

	return out.Body, size, nil
}
