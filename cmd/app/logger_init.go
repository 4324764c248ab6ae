package main

import (
	"github.com/osse101/DropsMiner_Go/internal/config"
	"github.com/osse101/DropsMiner_Go/internal/logger"
)

// initLogger installs a stdout-only logger, used when the log directory
// cannot be written
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == logger.EnvironmentDev

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
