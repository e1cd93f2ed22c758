// Package dispatch routes admin invocations to their handlers.
//
// A Dispatcher owns a Router and a Connector. For each invocation it
// matches (method, path) against the route table, acquires one store
// handle from the Connector, runs the handler with that handle and releases
// the handle before returning, whatever the outcome. Handlers never open
// their own connections.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/tendadmin/internal/app/system/envelope"
	"github.com/dalemusser/tendadmin/internal/app/system/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReleaseFunc gives back a store handle. It is called exactly once.
type ReleaseFunc func(ctx context.Context) error

// Connector hands out one store handle per invocation.
type Connector[S any] interface {
	Open(ctx context.Context) (S, ReleaseFunc, error)
}

// ConnectorFunc adapts a function to Connector.
type ConnectorFunc[S any] func(ctx context.Context) (S, ReleaseFunc, error)

// Open calls f.
func (f ConnectorFunc[S]) Open(ctx context.Context) (S, ReleaseFunc, error) { return f(ctx) }

// unmatchedRoute labels logs and metrics for invocations with no route.
const unmatchedRoute = "unmatched"

// Dispatcher serves invocations. It holds no per-invocation state and is
// safe for concurrent use.
type Dispatcher[S any] struct {
	router  *Router[S]
	conn    Connector[S]
	log     *zap.Logger
	metrics *metrics.Recorder
}

// New builds a Dispatcher. rec may be nil.
func New[S any](router *Router[S], conn Connector[S], rec *metrics.Recorder, logger *zap.Logger) *Dispatcher[S] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher[S]{router: router, conn: conn, log: logger, metrics: rec}
}

// Dispatch serves one invocation and always returns a response.
func (d *Dispatcher[S]) Dispatch(ctx context.Context, req envelope.Request) (resp envelope.Response) {
	start := time.Now()
	reqID := uuid.NewString()
	ctx = WithRequestID(ctx, reqID)
	log := d.log.With(
		zap.String("request_id", reqID),
		zap.String("method", req.Method),
		zap.String("path", req.Path),
	)

	routeName := unmatchedRoute
	defer func() {
		elapsed := time.Since(start)
		d.metrics.Observe(routeName, req.Method, resp.StatusCode, elapsed)
		log.Info("invocation served",
			zap.String("route", routeName),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", elapsed),
		)
	}()

	if err := envelope.Validate(req); err != nil {
		log.Debug("rejecting malformed request", zap.Error(err))
		return envelope.NotAllowed()
	}

	route, params, ok := d.router.Match(req.Method, req.Path)
	if !ok {
		return envelope.NotAllowed()
	}
	routeName = route.Name
	req.PathParameters = mergeParams(req.PathParameters, params)

	store, release, err := d.conn.Open(ctx)
	if err != nil {
		log.Error("store connection failed", zap.Error(err))
		return envelope.Error(err)
	}
	defer func() {
		if release == nil {
			return
		}
		if err := release(context.WithoutCancel(ctx)); err != nil {
			log.Warn("store release failed", zap.Error(err))
		}
	}()

	return d.invoke(ctx, route, store, req, log)
}

func (d *Dispatcher[S]) invoke(ctx context.Context, route Route[S], store S, req envelope.Request, log *zap.Logger) (resp envelope.Response) {
	defer func() {
		if p := recover(); p != nil {
			log.Error("handler panicked",
				zap.String("route", route.Name),
				zap.Any("panic", p),
				zap.Stack("stack"),
			)
			resp = envelope.Error(fmt.Errorf("internal error: %v", p))
		}
	}()
	return route.Handle(ctx, store, req)
}

// mergeParams overlays the template parameters on the caller-supplied ones.
func mergeParams(supplied, matched map[string]string) map[string]string {
	if len(supplied) == 0 {
		return matched
	}
	out := make(map[string]string, len(supplied)+len(matched))
	for k, v := range supplied {
		out[k] = v
	}
	for k, v := range matched {
		out[k] = v
	}
	return out
}
