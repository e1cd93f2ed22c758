package dispatch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dalemusser/tendadmin/internal/app/system/envelope"
)

// HandlerFunc serves one matched invocation using the store handle the
// dispatcher acquired for it.
type HandlerFunc[S any] func(ctx context.Context, store S, req envelope.Request) envelope.Response

// Route binds a method and a path template to a handler. Templates are
// absolute paths whose segments are either literals or {name} parameters,
// e.g. "/updateStatus/{id}/{status}".
type Route[S any] struct {
	Name    string
	Method  string
	Pattern string
	Handle  HandlerFunc[S]
}

type segment struct {
	literal string
	param   string
}

type compiledRoute[S any] struct {
	route    Route[S]
	segments []segment
}

// Router is an ordered route table. The first route whose method and
// template both match wins.
type Router[S any] struct {
	routes []compiledRoute[S]
}

// NewRouter compiles routes, rejecting malformed templates.
func NewRouter[S any](routes ...Route[S]) (*Router[S], error) {
	rt := &Router[S]{routes: make([]compiledRoute[S], 0, len(routes))}
	for _, r := range routes {
		if r.Handle == nil {
			return nil, fmt.Errorf("route %s %s: nil handler", r.Method, r.Pattern)
		}
		segs, err := compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("route %s %s: %w", r.Method, r.Pattern, err)
		}
		r.Method = strings.ToUpper(r.Method)
		if r.Name == "" {
			r.Name = r.Pattern
		}
		rt.routes = append(rt.routes, compiledRoute[S]{route: r, segments: segs})
	}
	return rt, nil
}

func compile(pattern string) ([]segment, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("pattern must start with /")
	}
	parts := split(pattern)
	segs := make([]segment, len(parts))
	seen := map[string]bool{}
	for i, p := range parts {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			name := p[1 : len(p)-1]
			if name == "" {
				return nil, fmt.Errorf("empty parameter name in segment %d", i)
			}
			if seen[name] {
				return nil, fmt.Errorf("duplicate parameter %q", name)
			}
			seen[name] = true
			segs[i] = segment{param: name}
			continue
		}
		if strings.ContainsAny(p, "{}") {
			return nil, fmt.Errorf("malformed segment %q", p)
		}
		segs[i] = segment{literal: p}
	}
	return segs, nil
}

// split drops the leading slash and at most one trailing slash and returns
// the path segments.
func split(path string) []string {
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")
	return strings.Split(path, "/")
}

// Match finds the route for method and path and returns the path
// parameters extracted from its template.
func (rt *Router[S]) Match(method, path string) (Route[S], map[string]string, bool) {
	method = strings.ToUpper(method)
	parts := split(path)
	for _, cr := range rt.routes {
		if cr.route.Method != method {
			continue
		}
		if params, ok := cr.match(parts); ok {
			return cr.route, params, true
		}
	}
	return Route[S]{}, nil, false
}

func (cr compiledRoute[S]) match(parts []string) (map[string]string, bool) {
	if len(parts) != len(cr.segments) {
		return nil, false
	}
	var params map[string]string
	for i, seg := range cr.segments {
		if seg.param == "" {
			if parts[i] != seg.literal {
				return nil, false
			}
			continue
		}
		v, err := url.PathUnescape(parts[i])
		if err != nil || v == "" {
			return nil, false
		}
		if params == nil {
			params = make(map[string]string, len(cr.segments))
		}
		params[seg.param] = v
	}
	return params, true
}
