// internal/app/features/adminusers/search.go
package adminusers

import (
	"context"
	"net/http"

	"github.com/dalemusser/tendadmin/internal/app/system/envelope"
	"github.com/dalemusser/tendadmin/internal/app/system/paging"
	"github.com/dalemusser/tendadmin/internal/app/system/search"
	"github.com/dalemusser/tendadmin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// SearchUsers serves GET /searchUser?page=&limit=&search=.
// An empty term lists every user.
func (h *Handler) SearchUsers(ctx context.Context, s Stores, req envelope.Request) envelope.Response {
	log := h.logFor(ctx)
	pg := paging.Parse(req.Query("page"), req.Query("limit"), h.MaxPageSize)
	term := search.Parse(req.Query("search"))

	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Medium(), log, "search users")
	defer cancel()

	users, err := s.Users.Search(ctx, term, pg.Skip(), pg.Limit)
	if err != nil {
		log.Error("search users failed", zap.String("term", term.Raw), zap.Error(err))
		return envelope.Error(err)
	}
	matched, err := s.Users.CountMatching(ctx, term)
	if err != nil {
		log.Error("count search matches failed", zap.String("term", term.Raw), zap.Error(err))
		return envelope.Error(err)
	}
	total, err := s.Users.Count(ctx)
	if err != nil {
		log.Error("count users failed", zap.Error(err))
		return envelope.Error(err)
	}

	return envelope.JSON(http.StatusOK, searchResponse{
		Message:      envelope.MsgSuccess,
		Users:        summarize(users),
		TotalUsers:   total,
		MatchedUsers: matched,
	})
}
