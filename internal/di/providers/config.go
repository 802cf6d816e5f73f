// Package providers contains dependency injection providers for the SHLOKA server.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/shloka-app/shloka-server/internal/config"
	"github.com/shloka-app/shloka-server/internal/logger"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Format:    cfg.LogFormat(),
		Level:     logger.ParseLevel(cfg.Logger.Level),
		AddSource: cfg.App.Environment == "development",
	})

	log.Info("Starting SHLOKA server",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"data_dir", cfg.Store.DataDir,
	)

	return log, nil
}
