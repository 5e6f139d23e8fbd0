package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://example.com ,")
	t.Setenv("DEBUG", "true")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Debug)
}

func TestLoadIgnoresBlankOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", " , ,")

	cfg := Load()
	assert.Empty(t, cfg.AllowedOrigins)
}
