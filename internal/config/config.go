package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port               int           `validate:"min=1,max=65535"`
	WebDir             string        `validate:"required"`
	SessionFile        string        `validate:"required"`
	WatchInterval      time.Duration `validate:"gt=0"`
	AutoClaim          bool
	RateLimitPerMinute int           `validate:"min=0"`
	TrustedProxies     []string      `validate:"dive,ip"`
	ShutdownTimeout    time.Duration `validate:"gt=0"`
	LogLevel           string        `validate:"oneof=debug info warn warning error"`
	LogFormat          string        `validate:"oneof=json text"`
	LogDir             string        `validate:"required"`
	Environment        string        `validate:"required"`
	ServiceName        string        `validate:"required"`
	Version            string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		WebDir:             getEnv(EnvWebDir, DefaultWebDir),
		SessionFile:        getEnv(EnvSessionFile, DefaultSessionFile),
		AutoClaim:          getEnvAsBool(EnvAutoClaim, DefaultAutoClaim),
		RateLimitPerMinute: getEnvAsInt(EnvRateLimitPerMinute, DefaultRateLimitPerMinute),
		TrustedProxies:     getEnvAsSlice(EnvTrustedProxies),
		LogLevel:           strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:          strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:             getEnv(EnvLogDir, DefaultLogDir),
		Environment:        getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:        getEnv(EnvServiceName, DefaultServiceName),
		Version:            getEnv(EnvVersion, DefaultVersion),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.WatchInterval, err = time.ParseDuration(getEnv(EnvWatchInterval, DefaultWatchInterval)); err != nil {
		return nil, fmt.Errorf("invalid WATCH_INTERVAL value: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv(EnvShutdownTimeout, DefaultShutdownTimeout)); err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT value: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to the
// default when unset or unparsable
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsBool parses a boolean environment variable, falling back to the
// default when unset or unparsable
func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvAsSlice splits a comma separated variable, dropping empty entries
func getEnvAsSlice(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
