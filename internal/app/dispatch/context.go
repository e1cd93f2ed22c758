package dispatch

import "context"

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID stores the invocation's request id on ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the invocation's request id, or "" outside a dispatch.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
