// internal/app/features/adminusers/status.go
package adminusers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dalemusser/tendadmin/internal/app/dispatch"
	userstore "github.com/dalemusser/tendadmin/internal/app/store/users"
	"github.com/dalemusser/tendadmin/internal/app/system/envelope"
	"github.com/dalemusser/tendadmin/internal/app/system/htmlsanitize"
	"github.com/dalemusser/tendadmin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// UpdateStatus serves PATCH /updateStatus/{id}/{status}. Any status string
// is accepted. Markup is stripped before it is stored unless nothing would
// be left, in which case the trimmed value is stored as sent.
func (h *Handler) UpdateStatus(ctx context.Context, s Stores, req envelope.Request) envelope.Response {
	log := h.logFor(ctx)

	id, err := userstore.ParseID(req.Param("id"))
	if err != nil {
		log.Warn("update status: bad user id", zap.String("id", req.Param("id")), zap.Error(err))
		return envelope.Error(err)
	}
	status := htmlsanitize.PlainTextOrTrimmed(req.Param("status"))

	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Short(), log, "update user status")
	defer cancel()

	user, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return envelope.NotFound(msgUserNotFound)
		}
		log.Error("update status: load user failed", zap.String("user_id", id.Hex()), zap.Error(err))
		return envelope.Error(err)
	}

	if err := s.Users.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return envelope.NotFound(msgUserNotFound)
		}
		log.Error("update status failed", zap.String("user_id", id.Hex()), zap.Error(err))
		return envelope.Error(err)
	}

	if s.Audit != nil {
		s.Audit.UserStatusChanged(ctx, dispatch.RequestID(ctx), id, user.Status, status)
	}
	return envelope.Message(http.StatusOK, fmt.Sprintf("status of user %s updated successfully", id.Hex()))
}
