package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("API_KEY", "s3cret")
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://tasks.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.APIKey)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "./tasks.db", cfg.DBPath)
	assert.Equal(t, []string{"http://localhost:3000", "https://tasks.example.com"}, cfg.AllowedOrigins)
}

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}
