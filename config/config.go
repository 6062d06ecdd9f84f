package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all runtime configuration. Every field maps to one
// environment variable; main loads .env before calling Load.
type Config struct {
	Port               string
	DBConnectionString string
	AccessTokenSecret  string
	RedisURL           string
	RabbitURL          string
	ObjectStorage      ObjectStorageConfig
}

// ObjectStorageConfig configures the S3-compatible bucket used for
// listing and profile photos.
type ObjectStorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string // base URL photos are served from; derived from endpoint when empty
	UseSSL    bool
}

// Load reads configuration from the environment. The database connection
// string and the token signing secret have no sensible defaults and are
// required; everything else falls back to development values.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getenv("PORT", "8080"),
		DBConnectionString: os.Getenv("DB_CONNECTION_STRING"),
		AccessTokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		RedisURL:           getenv("REDIS_URL", "localhost:6379"),
		RabbitURL:          os.Getenv("RABBITMQ_URL"),
		ObjectStorage: ObjectStorageConfig{
			Endpoint:  getenv("S3_ENDPOINT", "localhost:9000"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			Bucket:    getenv("S3_BUCKET", "sharebnb"),
			PublicURL: os.Getenv("S3_PUBLIC_URL"),
			UseSSL:    getenvBool("S3_USE_SSL", false),
		},
	}

	if cfg.DBConnectionString == "" {
		return nil, errors.New("DB_CONNECTION_STRING environment variable is required")
	}
	if cfg.AccessTokenSecret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET environment variable is required")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
