package dispatch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/tendadmin/internal/app/dispatch"
	"github.com/dalemusser/tendadmin/internal/app/system/envelope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHTTPHandler(t *testing.T) {
	var got envelope.Request
	rt, err := dispatch.NewRouter(dispatch.Route[string]{
		Name: "status", Method: http.MethodPatch, Pattern: "/updateStatus/{id}/{status}",
		Handle: func(_ context.Context, _ string, req envelope.Request) envelope.Response {
			got = req
			return envelope.Message(http.StatusOK, "ok")
		},
	})
	require.NoError(t, err)
	d := dispatch.New[string](rt, &countingConnector{handle: "h"}, nil, zap.NewNop())
	h := dispatch.HTTPHandler(d)

	req := httptest.NewRequest(http.MethodPatch, "/updateStatus/abc/on%20hold?page=3&page=4", strings.NewReader(`{"x":1}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok"}`, rec.Body.String())
	assert.Equal(t, "on hold", got.Param("status"))
	assert.Equal(t, "3", got.Query("page"))
	assert.Equal(t, `{"x":1}`, got.Body)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/updateStatus/abc/x", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"message":"Endpoint not allowed"}`, rec.Body.String())
}
