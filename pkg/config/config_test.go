package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "MONGO_DATABASE", "POSTS_COLLECTION",
		"COMMENTS_COLLECTION", "JWT_SECRET", "S3_REGION", "S3_BUCKET",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, "inkwell", cfg.MongoDatabase)
	require.Equal(t, "posts", cfg.PostsCollection)
	require.Equal(t, "comments", cfg.CommentsCollection)
	require.Equal(t, "us-east-1", cfg.S3Region)
	require.Equal(t, "inkwell-media", cfg.S3Bucket)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("POSTGRES_CONN_STR", "host=pg user=app dbname=inkwell")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("FILE_BASE_URL", "https://files.example.com")

	cfg := Load()
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	require.Equal(t, "host=pg user=app dbname=inkwell", cfg.PostgresConnStr)
	require.Equal(t, "from-env", cfg.JWTSecret)
	require.Equal(t, "https://files.example.com", cfg.FileBaseURL)
}
