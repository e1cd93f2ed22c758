// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/tendadmin/internal/app/dispatch"
	healthfeature "github.com/dalemusser/tendadmin/internal/app/features/health"
	"github.com/dalemusser/tendadmin/internal/app/system/metrics"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for the server.
//
// /health and /metrics are served directly; every other path goes through
// the admin dispatcher, which answers unknown method/path pairs with 405.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	rec := metrics.NewRecorder(prometheus.DefaultRegisterer)

	conn := PooledConnector{DB: deps.MongoDatabase, Audit: appCfg.AuditConfig(), Log: logger}
	d, err := BuildDispatcher(appCfg, conn, rec, logger)
	if err != nil {
		logger.Error("admin router init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/metrics", promhttp.Handler())

	// Admin operations
	r.Handle("/*", dispatch.HTTPHandler(d))

	return r, nil
}
