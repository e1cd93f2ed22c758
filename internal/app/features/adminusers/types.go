// internal/app/features/adminusers/types.go
package adminusers

import (
	"encoding/json"

	"github.com/dalemusser/tendadmin/internal/domain/models"
)

// userSummary is the projection returned by list and search.
type userSummary struct {
	UserID      string  `json:"userId"`
	UserName    string  `json:"userName"`
	TotalNodes  int64   `json:"totalNodes"`
	OutReach    int64   `json:"outReach"`
	UserBalance float64 `json:"userBalance"`
}

func summarize(users []models.User) []userSummary {
	out := make([]userSummary, 0, len(users))
	for _, u := range users {
		out = append(out, userSummary{
			UserID:      u.ID.Hex(),
			UserName:    u.UserName,
			TotalNodes:  u.TotalNode,
			OutReach:    u.OutReach,
			UserBalance: u.Balance(),
		})
	}
	return out
}

type listResponse struct {
	Message    string        `json:"message"`
	Users      []userSummary `json:"users"`
	TotalUsers int64         `json:"totalUsers"`
}

type searchResponse struct {
	Message string        `json:"message"`
	Users   []userSummary `json:"users"`
	// TotalUsers is the unfiltered collection count; MatchedUsers counts
	// the documents matching the term.
	TotalUsers   int64 `json:"totalUsers"`
	MatchedUsers int64 `json:"matchedUsers"`
}

type statsResponse struct {
	Message              string      `json:"message"`
	TotalUsers           int64       `json:"totalUsers"`
	TotalChainInvestment json.Number `json:"totalChainInvestment"`
	MissingRootNodes     []string    `json:"missingRootNodes"`
}
