// internal/app/features/adminusers/softdelete.go
package adminusers

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/tendadmin/internal/app/dispatch"
	userstore "github.com/dalemusser/tendadmin/internal/app/store/users"
	"github.com/dalemusser/tendadmin/internal/app/system/envelope"
	"github.com/dalemusser/tendadmin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

const (
	msgUserNotFound = "user not found against this userID"
	msgSoftDeleted  = "user soft-delete action performed successfully"
)

// SoftDelete serves PATCH /softDelete/{id}. The user document is flagged
// isDeleted and kept.
func (h *Handler) SoftDelete(ctx context.Context, s Stores, req envelope.Request) envelope.Response {
	log := h.logFor(ctx)

	id, err := userstore.ParseID(req.Param("id"))
	if err != nil {
		log.Warn("soft delete: bad user id", zap.String("id", req.Param("id")), zap.Error(err))
		return envelope.Error(err)
	}

	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Short(), log, "soft delete user")
	defer cancel()

	if _, err := s.Users.GetByID(ctx, id); err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return envelope.NotFound(msgUserNotFound)
		}
		log.Error("soft delete: load user failed", zap.String("user_id", id.Hex()), zap.Error(err))
		return envelope.Error(err)
	}

	if err := s.Users.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return envelope.NotFound(msgUserNotFound)
		}
		log.Error("soft delete failed", zap.String("user_id", id.Hex()), zap.Error(err))
		return envelope.Error(err)
	}

	if s.Audit != nil {
		s.Audit.UserSoftDeleted(ctx, dispatch.RequestID(ctx), id)
	}
	return envelope.Message(http.StatusOK, msgSoftDeleted)
}
