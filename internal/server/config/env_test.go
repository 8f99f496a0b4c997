package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv(EnvGRPCAddress, ":6000")
	t.Setenv(EnvAccessTokenSecret, "env-access")
	t.Setenv(EnvRefreshTokenSecret, "env-refresh")
	t.Setenv(EnvAccessTokenExpiry, "1d")
	t.Setenv(EnvRefreshTokenExpiry, "10d")
	t.Setenv(EnvImageURLExpiry, "90s")
	t.Setenv(EnvImageMaxBytes, "2048")
	t.Setenv(EnvS3Bucket, "")

	cfg := validConfig()
	parseEnv(cfg)

	assert.Equal(t, ":6000", cfg.EndpointAddrGRPC)
	assert.Equal(t, "env-access", cfg.AccessTokenSecret)
	assert.Equal(t, "env-refresh", cfg.RefreshTokenSecret)
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 240*time.Hour, cfg.RefreshTokenValidityDuration)
	assert.Equal(t, 90*time.Second, cfg.ImageURLValidity)
	assert.Equal(t, int64(2048), cfg.ImageMaxBytes)
	assert.Equal(t, "avatars", cfg.S3Bucket, "empty variables are ignored")
}

func TestParseEnv_InvalidValuesPanic(t *testing.T) {
	t.Run("duration", func(t *testing.T) {
		t.Setenv(EnvAccessTokenExpiry, "tomorrow")
		assert.Panics(t, func() { parseEnv(&Config{}) })
	})
	t.Run("size", func(t *testing.T) {
		t.Setenv(EnvImageMaxBytes, "5MB")
		assert.Panics(t, func() { parseEnv(&Config{}) })
	})
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	const key = "LOG_LEVEL"
	if _, ok := os.LookupEnv(key); ok {
		t.Skipf("%s already set in the environment", key)
	}

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=warn\n"), 0o600))

	orig := dotEnvFile
	dotEnvFile = path
	t.Cleanup(func() {
		dotEnvFile = orig
		_ = os.Unsetenv(key)
	})

	cfg := validConfig()
	parseEnv(cfg)

	assert.Equal(t, "warn", cfg.LogLevel)
}
