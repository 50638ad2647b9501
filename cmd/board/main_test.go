package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/preston-bernstein/mlb-matchup-service/internal/render"
)

func TestRunPrintsFixtureBoard(t *testing.T) {
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("DISPLAY_TIMEZONE", "UTC")
	t.Setenv("PROVIDER_MIN_INTERVAL", "1ms")

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, stderr.String())
	}
	out := stdout.String()
	if !strings.HasPrefix(out, "# "+render.Title) {
		t.Fatalf("expected board title, got %q", out)
	}
	if !strings.Contains(out, "## Odds for ") {
		t.Fatalf("expected a date section, got %q", out)
	}
}

func TestRunFailsWhenContextCanceled(t *testing.T) {
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("PROVIDER_MIN_INTERVAL", "1ms")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	if code := run(ctx, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Error fetching data:") {
		t.Fatalf("expected fetch error on stderr, got %q", stderr.String())
	}
}
