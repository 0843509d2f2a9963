package requestctx

import (
	"context"
	"testing"
)

func TestRequestID(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
	ctx := WithRequestID(context.Background(), "req-1")
	if got := GetRequestID(ctx); got != "req-1" {
		t.Fatalf("expected req-1, got %q", got)
	}
}

func TestAnnotate(t *testing.T) {
	Annotate(context.Background(), "ignored", true)

	ctx := WithFields(context.Background())
	Annotate(ctx, "page", "holidays")
	Annotate(ctx, "session", "abc")
	attrs := Attrs(ctx)
	if len(attrs) != 2 || attrs[0].Key != "page" || attrs[1].Value.String() != "abc" {
		t.Fatalf("unexpected attrs %v", attrs)
	}
}
