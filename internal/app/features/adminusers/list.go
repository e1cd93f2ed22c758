// internal/app/features/adminusers/list.go
package adminusers

import (
	"context"
	"net/http"

	"github.com/dalemusser/tendadmin/internal/app/system/envelope"
	"github.com/dalemusser/tendadmin/internal/app/system/paging"
	"github.com/dalemusser/tendadmin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ListUsers serves GET /getAllUser?page=&limit=.
func (h *Handler) ListUsers(ctx context.Context, s Stores, req envelope.Request) envelope.Response {
	log := h.logFor(ctx)
	pg := paging.Parse(req.Query("page"), req.Query("limit"), h.MaxPageSize)

	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Medium(), log, "list users")
	defer cancel()

	users, err := s.Users.List(ctx, pg.Skip(), pg.Limit)
	if err != nil {
		log.Error("list users failed", zap.Error(err))
		return envelope.Error(err)
	}
	total, err := s.Users.Count(ctx)
	if err != nil {
		log.Error("count users failed", zap.Error(err))
		return envelope.Error(err)
	}

	return envelope.JSON(http.StatusOK, listResponse{
		Message:    envelope.MsgSuccess,
		Users:      summarize(users),
		TotalUsers: total,
	})
}
