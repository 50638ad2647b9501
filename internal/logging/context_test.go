package logging

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func TestFromContextReturnsStoredLogger(t *testing.T) {
	stored := slog.New(slog.NewTextHandler(io.Discard, nil))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithLogger(context.Background(), stored)
	if got := FromContext(ctx, fallback); got != stored {
		t.Fatal("expected stored logger")
	}
}

func TestFromContextFallsBack(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback without stored logger")
	}
	if got := FromContext(WithLogger(context.Background(), nil), fallback); got != fallback {
		t.Fatal("expected nil logger not to be stored")
	}
	if got := FromContext(context.Background(), nil); got != nil {
		t.Fatal("expected nil when nothing is available")
	}
}
