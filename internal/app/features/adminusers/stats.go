// internal/app/features/adminusers/stats.go
package adminusers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	chainstore "github.com/dalemusser/tendadmin/internal/app/store/chains"
	"github.com/dalemusser/tendadmin/internal/app/system/envelope"
	"github.com/dalemusser/tendadmin/internal/app/system/timeouts"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ChainStats serves GET /getUserChainStats.
//
// totalChainInvestment is the sum over all chains of the root node's
// totalMembers times the chain's seedAmount. A chain whose root node is
// missing contributes nothing and is listed in missingRootNodes.
func (h *Handler) ChainStats(ctx context.Context, s Stores, _ envelope.Request) envelope.Response {
	log := h.logFor(ctx)

	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Medium(), log, "chain stats")
	defer cancel()

	totalUsers, err := s.Users.Count(ctx)
	if err != nil {
		log.Error("count users failed", zap.Error(err))
		return envelope.Error(err)
	}

	chains, err := s.Chains.List(ctx)
	if err != nil {
		log.Error("list chains failed", zap.Error(err))
		return envelope.Error(err)
	}

	total := decimal.Zero
	missing := []string{}
	for _, c := range chains {
		members, err := s.Chains.RootMembers(ctx, c)
		if errors.Is(err, chainstore.ErrRootNodeMissing) {
			log.Warn("chain root node missing; chain skipped", zap.String("chain", c.Name))
			missing = append(missing, c.Name)
			continue
		}
		if err != nil {
			log.Error("load chain root node failed", zap.String("chain", c.Name), zap.Error(err))
			return envelope.Error(err)
		}
		total = total.Add(decimal.NewFromFloat(c.SeedAmount).Mul(decimal.NewFromInt(members)))
	}

	return envelope.JSON(http.StatusOK, statsResponse{
		Message:              envelope.MsgSuccess,
		TotalUsers:           totalUsers,
		TotalChainInvestment: json.Number(total.String()),
		MissingRootNodes:     missing,
	})
}
