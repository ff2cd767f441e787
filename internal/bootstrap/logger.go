package bootstrap

import (
	"log/slog"

	"github.com/osse101/ClosetBot_Go/internal/config"
	"github.com/osse101/ClosetBot_Go/internal/logger"
)

// SetupLogger initializes the default slog logger from the app configuration
// and reports non-fatal configuration warnings.
func SetupLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	))

	slog.Info(LogMsgStartingClosetBot,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"store_driver", cfg.Store.Driver,
		"http_port", cfg.HTTPPort)

	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}
}
