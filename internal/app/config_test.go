package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")

	cfg := LoadConfig()

	assert.Equal(t, "access-secret", cfg.AccessTokenSecret)
	assert.Equal(t, "refresh-secret", cfg.RefreshTokenSecret)
	assert.Equal(t, "gatehouse.db", cfg.DatabaseFile)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	assert.Empty(t, cfg.CORSOrigin)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "a")
	t.Setenv("REFRESH_TOKEN_SECRET", "r")
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_FILE", "/data/auth.db")
	t.Setenv("CORS_ORIGIN", "https://app.example.com")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30s")

	cfg := LoadConfig()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/data/auth.db", cfg.DatabaseFile)
	assert.Equal(t, "https://app.example.com", cfg.CORSOrigin)
	assert.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "soon")

	cfg := LoadConfig()

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestConfigValidate(t *testing.T) {
	valid := Config{AccessTokenSecret: "a", RefreshTokenSecret: "r"}
	require.NoError(t, valid.Validate())

	cases := map[string]Config{
		"missing access secret":  {RefreshTokenSecret: "r"},
		"missing refresh secret": {AccessTokenSecret: "a"},
		"missing both":           {},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, cfg.Validate(), ErrMissingSecrets)
		})
	}
}
