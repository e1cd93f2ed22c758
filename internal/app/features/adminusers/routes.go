// internal/app/features/adminusers/routes.go
package adminusers

import (
	"net/http"

	"github.com/dalemusser/tendadmin/internal/app/dispatch"
)

// Routes returns the admin route table in match order.
//
// Example wiring from bootstrap:
//
//	h := adminusers.NewHandler(cfg.MaxPageSize, logger)
//	router, err := dispatch.NewRouter(adminusers.Routes(h)...)
func Routes(h *Handler) []dispatch.Route[Stores] {
	return []dispatch.Route[Stores]{
		{Name: "getAllUser", Method: http.MethodGet, Pattern: "/getAllUser", Handle: h.ListUsers},
		{Name: "getUserChainStats", Method: http.MethodGet, Pattern: "/getUserChainStats", Handle: h.ChainStats},
		{Name: "searchUser", Method: http.MethodGet, Pattern: "/searchUser", Handle: h.SearchUsers},
		{Name: "softDelete", Method: http.MethodPatch, Pattern: "/softDelete/{id}", Handle: h.SoftDelete},
		{Name: "updateStatus", Method: http.MethodPatch, Pattern: "/updateStatus/{id}/{status}", Handle: h.UpdateStatus},
	}
}
