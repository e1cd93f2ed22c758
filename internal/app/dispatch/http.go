package dispatch

import (
	"io"
	"net/http"

	"github.com/dalemusser/tendadmin/internal/app/system/envelope"
)

// MaxBodyBytes caps how much of an HTTP request body is forwarded.
const MaxBodyBytes = 1 << 20

// HTTPHandler exposes the dispatcher as an http.Handler. The request is
// converted to an envelope (first value of each query key, escaped path so
// path parameters are unescaped exactly once) and the envelope response is
// written back as JSON.
func HTTPHandler[S any](d *Dispatcher[S]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := envelope.Request{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
		}
		if q := r.URL.Query(); len(q) > 0 {
			req.QueryParameters = make(map[string]string, len(q))
			for k := range q {
				req.QueryParameters[k] = q.Get(k)
			}
		}
		if r.Body != nil {
			b, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
			if err != nil {
				writeResponse(w, envelope.Error(err))
				return
			}
			req.Body = string(b)
		}

		writeResponse(w, d.Dispatch(r.Context(), req))
	})
}

func writeResponse(w http.ResponseWriter, resp envelope.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	_, _ = io.WriteString(w, resp.Body)
}
