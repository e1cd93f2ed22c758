// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the admin backend.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, max_page_size, etc.
//   - Environment variables: TENDADMIN_MONGO_URI, TENDADMIN_MAX_PAGE_SIZE, etc.
//   - Command-line flags: --mongo_uri, --max_page_size, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "10D", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},

	{Name: "max_page_size", Default: 0, Desc: "Upper bound for the limit query parameter (0 = unbounded)"},

	{Name: "audit_log_admin", Default: "all", Desc: "Admin event logging: 'all' (db+log), 'db', 'log', or 'off'"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// Precedence is flags > env > files > defaults. The Lambda entry calls it
// too, where only the environment is normally set.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "TENDADMIN", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MaxPageSize:      int64(appValues.Int("max_page_size")),
		AuditLogAdmin:    appValues.String("audit_log_admin"),
	}

	return coreCfg, appCfg, nil
}

var configValidator = validator.New()

// ValidateConfig rejects a config that cannot work before anything connects.
// coreCfg may be nil (the Lambda entry has no use for it).
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if err := configValidator.Struct(appCfg); err != nil {
		logger.Error("invalid app config", zap.Error(err))
		return fmt.Errorf("invalid app config: %w", err)
	}
	return nil
}
