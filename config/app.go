package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// App holds process settings read from the environment.
type App struct {
	Port    string
	GinMode string

	StorageBackend string // "local", "gcs" or "minio"
	MediaRoot      string
	GCSBucket      string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	FetchTimeout  time.Duration
	FetchMaxBytes int64

	ProfileCacheTTL  time.Duration
	ExportHistoryTTL time.Duration

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
}

func LoadApp() App {
	return App{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", "local")),
		MediaRoot:      getEnv("MEDIA_ROOT", "media"),
		GCSBucket:      getEnv("GCS_BUCKET", ""),
		MinioEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getEnv("MINIO_BUCKET", "hojadevida"),
		MinioUseSSL:    getEnvBool("MINIO_USE_SSL", false),

		FetchTimeout:  getEnvDuration("FETCH_TIMEOUT", 15*time.Second),
		FetchMaxBytes: int64(getEnvInt("FETCH_MAX_BYTES", 20<<20)),

		ProfileCacheTTL:  getEnvDuration("PROFILE_CACHE_TTL", 10*time.Minute),
		ExportHistoryTTL: getEnvDuration("EXPORT_HISTORY_TTL", 90*24*time.Hour),

		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTIssuer:   getEnv("JWT_ISSUER", ""),
		JWTAudience: getEnv("JWT_AUDIENCE", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}
