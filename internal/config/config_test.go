package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTTL(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"", time.Hour},
		{"15m", 15 * time.Minute},
		{"2h", 2 * time.Hour},
		{"30", 30 * time.Minute},
		{"garbage", time.Hour},
		{"-5m", time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTTL(tt.raw, time.Hour))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("UPLOAD_URL_TTL", "")
	t.Setenv("ALLOWED_ORIGINS", "https://shop.example.com/, https://admin.example.com")
	t.Setenv("APP_URL", "https://shop.example.com/")

	cfg := Load()

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.UploadURLTTL)
	assert.Equal(t, "https://shop.example.com", cfg.AppURL)
	assert.Equal(t, []string{"https://shop.example.com/", "https://admin.example.com"}, cfg.AllowedOrigins)
}
