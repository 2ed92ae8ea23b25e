package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "*", cfg.FrontendURL)
	assert.Equal(t, "./data/pokedex.db", cfg.DatabasePath)
	assert.Equal(t, "./assets", cfg.AssetsPath)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadSize)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("FRONTEND_URL", "http://localhost:5173")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("MAX_UPLOAD_SIZE", "1048576")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:5173", cfg.FrontendURL)
	assert.Equal(t, "super-secret", cfg.JWTSecret)
	assert.Equal(t, int64(1<<20), cfg.MaxUploadSize)
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	t.Setenv("MAX_UPLOAD_SIZE", "not-a-number")

	cfg := Load()

	assert.Equal(t, int64(10<<20), cfg.MaxUploadSize)
}
