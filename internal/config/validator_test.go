package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:               DefaultPort,
		WebDir:             DefaultWebDir,
		SessionFile:        DefaultSessionFile,
		WatchInterval:      time.Minute,
		AutoClaim:          true,
		RateLimitPerMinute: DefaultRateLimitPerMinute,
		ShutdownTimeout:    5 * time.Second,
		LogLevel:           DefaultLogLevel,
		LogFormat:          DefaultLogFormat,
		LogDir:             DefaultLogDir,
		Environment:        DefaultEnvironment,
		ServiceName:        DefaultServiceName,
		Version:            DefaultVersion,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid config", func(c *Config) {}, ""},
		{"warning alias accepted", func(c *Config) { c.LogLevel = "warning" }, ""},
		{"port too low", func(c *Config) { c.Port = 0 }, "Port"},
		{"port too high", func(c *Config) { c.Port = 70000 }, "Port"},
		{"zero watch interval", func(c *Config) { c.WatchInterval = 0 }, "WatchInterval"},
		{"negative rate limit", func(c *Config) { c.RateLimitPerMinute = -1 }, "RateLimitPerMinute"},
		{"unknown log level", func(c *Config) { c.LogLevel = "trace" }, "LogLevel"},
		{"unknown log format", func(c *Config) { c.LogFormat = "yaml" }, "LogFormat"},
		{"missing web dir", func(c *Config) { c.WebDir = "" }, "WebDir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateWithWarnings(t *testing.T) {
	t.Run("warns about missing web assets and session file", func(t *testing.T) {
		cfg := validConfig()
		cfg.WebDir = filepath.Join(t.TempDir(), "missing")
		cfg.SessionFile = filepath.Join(t.TempDir(), "missing.yaml")
		cfg.RateLimitPerMinute = 0

		warnings, err := cfg.ValidateWithWarnings()

		require.NoError(t, err)
		assert.Len(t, warnings, 3)
	})

	t.Run("no warnings for a complete setup", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o644))
		session := filepath.Join(dir, "session.yaml")
		require.NoError(t, os.WriteFile(session, []byte("user_id: \"1\"\n"), 0o644))

		cfg := validConfig()
		cfg.WebDir = dir
		cfg.SessionFile = session

		warnings, err := cfg.ValidateWithWarnings()

		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("invalid config returns error and no warnings", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = -5

		warnings, err := cfg.ValidateWithWarnings()

		assert.Error(t, err)
		assert.Nil(t, warnings)
	})
}
