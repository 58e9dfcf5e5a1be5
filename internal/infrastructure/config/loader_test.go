package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
  readTimeout: 5
database:
  host: localhost
  database: joblight_test
payment:
  returnUrl: https://api.joblight.test/payments/return
  pendingTtl: 15
providers:
  fapshi:
    enabled: true
    timeout: 7
ai:
  services:
    - code: cv_review
      name: CV review
      tokens: 40
  packs:
    - code: pro
      tokens: 1000
      discountPercent: 15
`

func withConfigDir(t *testing.T, env, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))

	previous := ConfigPaths
	ConfigPaths = []string{dir}
	t.Cleanup(func() { ConfigPaths = previous })
	t.Setenv("JL_ENV", env)
}

func TestLoadConfig(t *testing.T) {
	t.Run("Reads the environment file and converts durations", func(t *testing.T) {
		withConfigDir(t, Test, testYAML)

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 15*time.Minute, cfg.Payment.PendingTTL)
		assert.Equal(t, 7*time.Second, cfg.Providers.Fapshi.Timeout)
		assert.Equal(t, 20*time.Second, cfg.Providers.NotchPay.Timeout)
		assert.Equal(t, 24*time.Hour, cfg.Redis.ViewTTL)
		assert.Equal(t, "XAF", cfg.Payment.DefaultCurrency)
		require.Len(t, cfg.AI.Services, 1)
		assert.Equal(t, int64(40), cfg.AI.Services[0].Tokens)
		assert.Equal(t, int64(15), cfg.AI.Packs[0].DiscountPercent)
	})

	t.Run("Environment overrides secrets", func(t *testing.T) {
		withConfigDir(t, Test, testYAML)
		t.Setenv("JL_DB_PASSWORD", "s3cret")
		t.Setenv("JL_FAPSHI_API_KEY", "FAK_live")
		t.Setenv("JL_JWT_SECRET", "jwt-secret")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "s3cret", cfg.Database.Password)
		assert.Equal(t, "FAK_live", cfg.Providers.Fapshi.APIKey)
		assert.Equal(t, "jwt-secret", cfg.Auth.JWTSecret)
	})

	t.Run("Production requires a JWT secret", func(t *testing.T) {
		withConfigDir(t, Production, testYAML)
		t.Setenv("JL_JWT_SECRET", "")

		_, err := LoadConfig()

		assert.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		withConfigDir(t, Test, testYAML)
		t.Setenv("JL_ENV", "staging")

		_, err := LoadConfig()

		assert.Error(t, err)
	})
}
