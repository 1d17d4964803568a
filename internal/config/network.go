package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	DefaultHTTPPort       = "8080"
	DefaultStorageHost    = "localhost:9000"
	DefaultStorageBucket  = "videos"
	DefaultDatabaseDriver = "sqlite3"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host         string
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StorageConfig describes where video objects are served from
type StorageConfig struct {
	Endpoint  string
	Bucket    string
	UseSSL    bool
	AccessKey string
	SecretKey string
}

// Presign reports whether object URLs should be presigned with credentials.
func (sc StorageConfig) Presign() bool {
	return sc.AccessKey != "" && sc.SecretKey != ""
}

// DatabaseConfig selects the record store backend
type DatabaseConfig struct {
	Driver string
	DSN    string
}

// RedisConfig is only needed by the redis processing guard
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// GetServerConfig returns server configuration from environment or defaults.
// The write timeout is left unbounded because a request runs the whole pipeline.
func GetServerConfig() ServerConfig {
	return ServerConfig{
		Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
		Port:         getEnvOrDefault("SERVER_PORT", DefaultHTTPPort),
		Environment:  getEnvOrDefault("APP_ENV", "development"),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}
}

// GetStorageConfig returns object storage configuration from environment or defaults
func GetStorageConfig() StorageConfig {
	return StorageConfig{
		Endpoint:  getEnvOrDefault("STORAGE_ENDPOINT", DefaultStorageHost),
		Bucket:    getEnvOrDefault("STORAGE_BUCKET", DefaultStorageBucket),
		UseSSL:    strings.EqualFold(os.Getenv("STORAGE_USE_SSL"), "true"),
		AccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		SecretKey: os.Getenv("STORAGE_SECRET_KEY"),
	}
}

// GetDatabaseConfig returns record store configuration. SQLite defaults to
// data/videos.db under the project root (or the working directory).
func GetDatabaseConfig() DatabaseConfig {
	driver := getEnvOrDefault("DATABASE_DRIVER", DefaultDatabaseDriver)
	if driver == "sqlite" {
		driver = DefaultDatabaseDriver
	}
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" && driver == DefaultDatabaseDriver {
		root, err := GetProjectRoot()
		if err != nil {
			root = "."
		}
		dsn = fmt.Sprintf("file:%s/data/videos.db?cache=shared&mode=rwc", root)
	}
	return DatabaseConfig{Driver: driver, DSN: dsn}
}

// GetRedisConfig returns redis connection settings
func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
