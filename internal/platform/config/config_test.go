package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "arogyamitram-backend", cfg.JWTIssuer)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowOrigins)
	assert.True(t, cfg.SeedDemoData)
	assert.False(t, cfg.IsProduction)
}

func TestLoadConfigSplitsCORSOriginsOnCommas(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "https://app.example.edu, https://staging.example.edu,https://admin.example.edu")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://app.example.edu",
		"https://staging.example.edu",
		"https://admin.example.edu",
	}, cfg.CORSAllowOrigins)
}

func TestLoadConfigInvalidExpiryFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_DURATION", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
}
