package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("PORT", "")
	t.Setenv("SEASON", "")
	t.Setenv("FINAL_WEEK", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 2024, cfg.Simulation.Season)
	assert.Equal(t, 15, cfg.Simulation.FinalWeek)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("SEASON", "2025")
	t.Setenv("FINAL_WEEK", "16")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("DB_MAX_CONN_LIFETIME", "2h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 2025, cfg.Simulation.Season)
	assert.Equal(t, 16, cfg.Simulation.FinalWeek)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 25, cfg.Database.MaxConns)
	assert.Equal(t, "2h0m0s", cfg.Database.MaxConnLifetime.String())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("ENV", "sandbox")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("ENV", "development")
	t.Setenv("FINAL_WEEK", "0")
	_, err = Load()
	assert.Error(t, err)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))

	t.Setenv("SOME_BOOL", "yes-ish")
	assert.False(t, getEnvAsBool("SOME_BOOL", false))

	t.Setenv("SOME_DURATION", "garbage")
	assert.Equal(t, "30m0s", getEnvAsDuration("SOME_DURATION", "30m").String())
}
