// Package config loads process configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the API process and the maintenance commands need.
type Config struct {
	Port        string
	Environment string
	AppURL      string

	DatabaseURL string
	DBMaxOpen   int
	DBMaxIdle   int
	DBLifetime  time.Duration

	AccessSecret string
	AccessTTL    time.Duration
	CookieSecure bool

	RedisURL string

	AWSRegion       string
	S3Bucket        string
	S3PublicBaseURL string
	S3Endpoint      string
	UploadURLTTL    time.Duration
	AllowedOrigins  []string
}

// Load reads a .env file when present and then the process environment.
func Load() *Config {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	return &Config{
		Port:        getenv("PORT", "4000"),
		Environment: getenv("ENVIRONMENT", "development"),
		AppURL:      strings.TrimSuffix(getenv("APP_URL", ""), "/"),

		DatabaseURL: getenv("DATABASE_URL", ""),
		DBMaxOpen:   getint("DB_MAX_OPEN", 25),
		DBMaxIdle:   getint("DB_MAX_IDLE", 25),
		DBLifetime:  time.Duration(getint("DB_MAX_LIFETIME", 300)) * time.Second,

		AccessSecret: getenv("ACCESS_SECRET", ""),
		AccessTTL:    ParseTTL(getenv("ACCESS_TTL", ""), 24*time.Hour),
		CookieSecure: getbool("COOKIE_SECURE", false),

		RedisURL: getenv("REDIS_URL", ""),

		AWSRegion:       getenv("AWS_REGION", "us-east-1"),
		S3Bucket:        getenv("S3_BUCKET", ""),
		S3PublicBaseURL: strings.TrimSuffix(getenv("S3_PUBLIC_BASE_URL", ""), "/"),
		S3Endpoint:      getenv("S3_ENDPOINT", ""),
		UploadURLTTL:    ParseTTL(getenv("UPLOAD_URL_TTL", ""), 5*time.Minute),
		AllowedOrigins:  splitList(getenv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}
}

// ParseTTL accepts Go durations ("15m", "1h") or a bare number of minutes.
// Empty or unparsable input yields def.
func ParseTTL(raw string, def time.Duration) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
		return time.Duration(minutes) * time.Minute
	}
	return def
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getint(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getbool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
