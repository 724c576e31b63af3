package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salestrackhq/salestrack_app/internal/platform/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5, cfg.LoginMaxAttempts)
	assert.Equal(t, config.DefaultLoginRateLimit, cfg.LoginRateLimit)
}

func TestLoadConfig_BadLoginRateLimitFallsBack(t *testing.T) {
	// A malformed rate must never reach the limiter: it would parse to a
	// zero-value rate that rejects every login.
	t.Setenv("LOGIN_RATE_LIMIT", "garbage")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLoginRateLimit, cfg.LoginRateLimit)
}

func TestLoadConfig_ValidLoginRateLimitKept(t *testing.T) {
	t.Setenv("LOGIN_RATE_LIMIT", "10-H")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "10-H", cfg.LoginRateLimit)
}

func TestLoadConfig_BadLoginMaxAttemptsFallsBack(t *testing.T) {
	t.Setenv("LOGIN_MAX_ATTEMPTS", "-3")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.LoginMaxAttempts)
}
