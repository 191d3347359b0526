package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey int

const (
	loggerCtxKey ctxKey = iota
	requestIDCtxKey
)

// IntoContext attaches a request-scoped logger and its request ID to ctx so
// lower layers (gorm tracing in particular) can correlate their output with
// the request that triggered it.
func IntoContext(ctx context.Context, log *zap.Logger, requestID string) context.Context {
	ctx = context.WithValue(ctx, loggerCtxKey, log)
	return context.WithValue(ctx, requestIDCtxKey, requestID)
}

// FromContext returns the request-scoped logger, or a no-op logger when the
// context carries none.
func FromContext(ctx context.Context) *zap.Logger {
	if log, ok := ctx.Value(loggerCtxKey).(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}

// GetRequestID returns the request ID placed by IntoContext, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey).(string)
	return id
}
