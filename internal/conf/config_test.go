package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "0 0 * * *", cfg.Scheduler.Schedule)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 15*time.Second, cfg.Whois.Timeout)
	assert.Equal(t, 1100*time.Millisecond, cfg.Telegram.Interval)
	assert.Equal(t, "https://api.telegram.org", cfg.Telegram.APIBase)
}

func TestLoadReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
mongodb:
  uri: "mongodb://db:27017"
  database: "monitor"
whois:
  api_key: "file-key"
  routes:
    - suffix: de
      provider: port43
    - suffix: co.uk
      provider: port43
scheduler:
  schedule: "30 8 * * *"
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	cfg, err := load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db:27017", cfg.MongoDB.URI)
	assert.Equal(t, "monitor", cfg.MongoDB.Database)
	assert.Equal(t, "file-key", cfg.Whois.APIKey)
	assert.Equal(t, []RouteConfig{
		{Suffix: "de", Provider: "port43"},
		{Suffix: "co.uk", Provider: "port43"},
	}, cfg.Whois.Routes)
	assert.Equal(t, "30 8 * * *", cfg.Scheduler.Schedule)
}

func TestLoadPlatformSecretsFromEnv(t *testing.T) {
	t.Setenv("TG_TOKEN", "env-token")
	t.Setenv("TG_ID", "12345")
	t.Setenv("SERVER_PORT", ":9090")

	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Telegram.PlatformToken)
	assert.Equal(t, "12345", cfg.Telegram.PlatformChat)
	assert.Equal(t, ":9090", cfg.Server.Port)
}
