package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries every deployment-specific identifier the service needs.
// It is built once in main and passed down explicitly; nothing else reads
// the environment. Missing values are not validated here; a bad value
// surfaces as a service error on first use.
type Config struct {
	Port string
	Env  string

	MongoURI           string
	MongoDatabase      string
	PostsCollection    string
	CommentsCollection string

	PostgresConnStr string

	FirebaseCredentialsPath string
	JWTSecret               string

	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	FileBaseURL string // public base used to build preview URLs without a round trip
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		MongoURI:           getEnv("MONGO_URI", ""),
		MongoDatabase:      getEnv("MONGO_DATABASE", "inkwell"),
		PostsCollection:    getEnv("POSTS_COLLECTION", "posts"),
		CommentsCollection: getEnv("COMMENTS_COLLECTION", "comments"),

		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),

		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		JWTSecret:               getEnv("JWT_SECRET", "supersecretjwtkey"),

		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Bucket:    getEnv("S3_BUCKET", "inkwell-media"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		FileBaseURL: getEnv("FILE_BASE_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
