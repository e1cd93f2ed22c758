// internal/app/bootstrap/connector.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/tendadmin/internal/app/dispatch"
	"github.com/dalemusser/tendadmin/internal/app/features/adminusers"
	"github.com/dalemusser/tendadmin/internal/app/store/audit"
	chainstore "github.com/dalemusser/tendadmin/internal/app/store/chains"
	userstore "github.com/dalemusser/tendadmin/internal/app/store/users"
	"github.com/dalemusser/tendadmin/internal/app/system/auditlog"
	"github.com/dalemusser/tendadmin/internal/app/system/metrics"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// NewStores builds the store handle the admin handlers run against.
func NewStores(db *mongo.Database, auditCfg auditlog.Config, logger *zap.Logger) adminusers.Stores {
	return adminusers.Stores{
		Users:  userstore.New(db),
		Chains: chainstore.New(db),
		Audit:  auditlog.New(audit.New(db), logger, auditCfg),
	}
}

// PooledConnector hands out stores over a shared, already connected
// database. Releasing is a no-op; the server's Shutdown hook owns the client.
type PooledConnector struct {
	DB    *mongo.Database
	Audit auditlog.Config
	Log   *zap.Logger
}

func (c PooledConnector) Open(context.Context) (adminusers.Stores, dispatch.ReleaseFunc, error) {
	return NewStores(c.DB, c.Audit, c.Log), nil, nil
}

// PerInvocationConnector opens a fresh client for every invocation and
// disconnects it on release. Used by the Lambda entry.
type PerInvocationConnector struct {
	Config AppConfig
	Log    *zap.Logger
}

func (c PerInvocationConnector) Open(ctx context.Context) (adminusers.Stores, dispatch.ReleaseFunc, error) {
	client, err := connectMongo(ctx, c.Config.MongoURI, c.Config.MongoMaxPoolSize)
	if err != nil {
		return adminusers.Stores{}, nil, err
	}
	stores := NewStores(client.Database(c.Config.MongoDatabase), c.Config.AuditConfig(), c.Log)
	release := func(ctx context.Context) error {
		return client.Disconnect(ctx)
	}
	return stores, release, nil
}

// BuildDispatcher assembles the admin route table behind conn. rec may be nil.
func BuildDispatcher(appCfg AppConfig, conn dispatch.Connector[adminusers.Stores], rec *metrics.Recorder, logger *zap.Logger) (*dispatch.Dispatcher[adminusers.Stores], error) {
	h := adminusers.NewHandler(appCfg.MaxPageSize, logger)
	router, err := dispatch.NewRouter(adminusers.Routes(h)...)
	if err != nil {
		return nil, err
	}
	return dispatch.New(router, conn, rec, logger), nil
}
