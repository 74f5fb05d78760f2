package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appconfig "github.com/inkwell-app/inkwell/backend/pkg/config"
)

// ObjectStore is the blob storage surface the handlers depend on.
// PreviewURL must return without any network round trip: callers embed the
// result directly in responses without awaiting anything.
type ObjectStore interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, fileID string) error
	PreviewURL(fileID string) string
}

// S3FileStore implements ObjectStore against an S3-compatible endpoint
// (MinIO in development).
type S3FileStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3FileStore builds the store. Client construction is local; a bad
// endpoint or credential only surfaces on the first request.
func NewS3FileStore(ctx context.Context, cfg *appconfig.Config) (*S3FileStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = true
	})

	baseURL := cfg.FileBaseURL
	if baseURL == "" {
		baseURL = strings.TrimSuffix(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
	}

	return &S3FileStore{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Upload stores the blob under a generated key and returns it as the file
// ID. The original extension is kept so previews serve with a usable type.
func (s *S3FileStore) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	fileID := uuid.NewString() + strings.ToLower(filepath.Ext(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(fileID),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading file: %w", err)
	}
	return fileID, nil
}

// Delete removes the blob.
func (s *S3FileStore) Delete(ctx context.Context, fileID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fileID),
	})
	if err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}

// PreviewURL builds the public URL for a stored file. Pure string
// assembly, no network.
func (s *S3FileStore) PreviewURL(fileID string) string {
	return s.baseURL + "/" + fileID
}
