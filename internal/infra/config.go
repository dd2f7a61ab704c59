package infra

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	ProjectID        string
	Location         string
	Model            string
	CredentialsPath  string
	AllowedOrigins   []string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
	MaxUploadBytes   int64
	RecordRetention  time.Duration
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. A missing project id is not an error: the service
// then runs in no-credentials mode and serves placeholder results.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8001"),
		ProjectID:        os.Getenv("GOOGLE_CLOUD_PROJECT_ID"),
		Location:         getEnv("IMAGEN_LOCATION", "us-central1"),
		Model:            getEnv("IMAGEN_MODEL", "imagen-4.0-ultra-generate-001"),
		CredentialsPath:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		AllowedOrigins:   splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 30)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 300)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		MaxUploadBytes:   int64(getEnvInt("MAX_UPLOAD_MB", 20)) << 20,
		RecordRetention:  time.Hour * time.Duration(getEnvInt("RECORD_RETENTION_HOURS", 24)),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
