package ctxutil

import (
	"context"
	"testing"
)

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	got := RequestIDFromCtx(ctx)
	if got != "req-123" {
		t.Fatalf("expected req-123, got %s", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestWithClientIP_And_ClientIPFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithClientIP(context.Background(), "203.0.113.7")

	got, ok := ClientIPFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if got != "203.0.113.7" {
		t.Fatalf("expected 203.0.113.7, got %s", got)
	}
}

func TestClientIPFromCtx_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := ClientIPFromCtx(context.Background()); ok {
		t.Fatal("expected ok=false for empty context")
	}
	if _, ok := ClientIPFromCtx(WithClientIP(context.Background(), "")); ok {
		t.Fatal("expected ok=false for empty ip")
	}
}

func TestClientIPFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("client_ip"), 42)
	if _, ok := ClientIPFromCtx(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}
