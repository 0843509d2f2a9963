package requestctx

import (
	"context"
	"log/slog"
	"sync"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	fieldsKey    ctxKey = "log_fields"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(requestIDKey).(string); ok {
		return value
	}
	return ""
}

type fields struct {
	mu    sync.Mutex
	attrs []slog.Attr
}

// WithFields attaches a bag that handlers fill through Annotate and the
// request logger reads once the handler returns.
func WithFields(ctx context.Context) context.Context {
	return context.WithValue(ctx, fieldsKey, &fields{})
}

func Annotate(ctx context.Context, key string, value any) {
	f, ok := ctx.Value(fieldsKey).(*fields)
	if !ok {
		return
	}
	f.mu.Lock()
	f.attrs = append(f.attrs, slog.Any(key, value))
	f.mu.Unlock()
}

func Attrs(ctx context.Context) []slog.Attr {
	f, ok := ctx.Value(fieldsKey).(*fields)
	if !ok {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]slog.Attr(nil), f.attrs...)
}
