// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/tendadmin/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after the DB connection and schema setup, before the
// handler is built. It applies TIMEOUT_* overrides.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	ApplyTimeouts(logger)
	return nil
}

// ApplyTimeouts applies TIMEOUT_PING, TIMEOUT_SHORT and TIMEOUT_MEDIUM overrides.
func ApplyTimeouts(logger *zap.Logger) {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		cur := timeouts.Current()
		logger.Info("timeouts overridden from environment",
			zap.Duration("ping", cur.Ping),
			zap.Duration("short", cur.Short),
			zap.Duration("medium", cur.Medium))
	}
}
