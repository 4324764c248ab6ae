package config

// Environment variable names
const (
	EnvPort               = "PORT"
	EnvWebDir             = "WEB_DIR"
	EnvSessionFile        = "SESSION_FILE"
	EnvWatchInterval      = "WATCH_INTERVAL"
	EnvAutoClaim          = "AUTO_CLAIM"
	EnvRateLimitPerMinute = "RATE_LIMIT_PER_MINUTE"
	EnvTrustedProxies     = "TRUSTED_PROXIES"
	EnvShutdownTimeout    = "SHUTDOWN_TIMEOUT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvLogDir             = "LOG_DIR"
	EnvEnvironment        = "ENVIRONMENT"
	EnvServiceName        = "SERVICE_NAME"
	EnvVersion            = "VERSION"
)

// Default configuration values
const (
	DefaultPort               = 5801
	DefaultWebDir             = "web"
	DefaultSessionFile        = "session.yaml"
	DefaultWatchInterval      = "1m"
	DefaultAutoClaim          = true
	DefaultRateLimitPerMinute = 600
	DefaultShutdownTimeout    = "5s"
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultLogDir             = "logs"
	DefaultEnvironment        = "dev"
	DefaultServiceName        = "drops-miner"
	DefaultVersion            = "dev"
)
