// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs after DB connections and schema setup are complete, but
// before the HTTP handler is built. WeShare has nothing to warm up, so it
// only records the settings the service will run with.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("weshare starting",
		zap.String("env", coreCfg.Env),
		zap.String("database", appCfg.MongoDatabase),
		zap.String("base_url", appCfg.BaseURL),
		zap.Uint64("mongo_max_pool_size", appCfg.MongoMaxPoolSize))
	return nil
}
