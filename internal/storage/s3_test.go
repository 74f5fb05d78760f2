package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	appconfig "github.com/inkwell-app/inkwell/backend/pkg/config"
)

func TestPreviewURLDefaultsToEndpointAndBucket(t *testing.T) {
	cfg := &appconfig.Config{
		S3Endpoint: "http://localhost:9000/",
		S3Region:   "us-east-1",
		S3Bucket:   "inkwell-media",
	}
	store, err := NewS3FileStore(context.Background(), cfg)
	require.NoError(t, err)

	require.Equal(t, "http://localhost:9000/inkwell-media/abc123.png", store.PreviewURL("abc123.png"))
}

func TestPreviewURLHonorsPublicBaseOverride(t *testing.T) {
	cfg := &appconfig.Config{
		S3Endpoint:  "http://minio:9000",
		S3Region:    "us-east-1",
		S3Bucket:    "inkwell-media",
		FileBaseURL: "https://files.example.com/media/",
	}
	store, err := NewS3FileStore(context.Background(), cfg)
	require.NoError(t, err)

	require.Equal(t, "https://files.example.com/media/abc123.png", store.PreviewURL("abc123.png"))
}
