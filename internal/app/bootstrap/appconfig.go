// internal/app/bootstrap/appconfig.go
package bootstrap

import "github.com/dalemusser/tendadmin/internal/app/system/auditlog"

// AppConfig holds service-specific configuration.
//
// Values come from environment variables (TENDADMIN_*), configuration files
// or command-line flags, loaded in LoadConfig. WAFFLE's CoreConfig covers the
// framework-level settings (ports, TLS, log level); this struct covers the
// admin backend itself and is shared by the HTTP server and the Lambda entry.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string `validate:"required"`
	MongoDatabase    string `validate:"required"`
	MongoMaxPoolSize uint64 `validate:"gte=1"`

	// MaxPageSize caps the limit query parameter; 0 leaves it unbounded.
	MaxPageSize int64 `validate:"gte=0"`

	// Audit destination for admin mutations: all, db, log or off.
	AuditLogAdmin string `validate:"oneof=all db log off"`
}

// AuditConfig returns the audit logger configuration.
func (c AppConfig) AuditConfig() auditlog.Config {
	return auditlog.Config{Admin: c.AuditLogAdmin}
}
