// internal/app/features/adminusers/handler.go
package adminusers

import (
	"context"

	"github.com/dalemusser/tendadmin/internal/app/dispatch"
	"github.com/dalemusser/tendadmin/internal/app/system/search"
	"github.com/dalemusser/tendadmin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UserStore is the users collection as the admin handlers see it.
type UserStore interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, skip, limit int64) ([]models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
	Search(ctx context.Context, term search.Term, skip, limit int64) ([]models.User, error)
	CountMatching(ctx context.Context, term search.Term) (int64, error)
}

// ChainStore reads chain definitions and root node member counts.
type ChainStore interface {
	List(ctx context.Context) ([]models.Chain, error)
	RootMembers(ctx context.Context, chain models.Chain) (int64, error)
}

// AuditRecorder records admin mutations. *auditlog.Logger satisfies it.
type AuditRecorder interface {
	UserSoftDeleted(ctx context.Context, requestID string, userID primitive.ObjectID)
	UserStatusChanged(ctx context.Context, requestID string, userID primitive.ObjectID, from, to string)
}

// Stores is the per-invocation handle the dispatcher injects. Audit may be nil.
type Stores struct {
	Users  UserStore
	Chains ChainStore
	Audit  AuditRecorder
}

// Handler serves the five admin user operations.
type Handler struct {
	Log *zap.Logger
	// MaxPageSize caps the limit query parameter. 0 means no cap.
	MaxPageSize int64
}

// NewHandler constructs the admin users handler.
func NewHandler(maxPageSize int64, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Log: logger, MaxPageSize: maxPageSize}
}

// logFor returns the handler logger tagged with the invocation's request id.
func (h *Handler) logFor(ctx context.Context) *zap.Logger {
	return h.Log.With(zap.String("request_id", dispatch.RequestID(ctx)))
}
