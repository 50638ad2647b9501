package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/preston-bernstein/mlb-matchup-service/internal/config"
	"github.com/preston-bernstein/mlb-matchup-service/internal/logging"
	"github.com/preston-bernstein/mlb-matchup-service/internal/render"
	"github.com/preston-bernstein/mlb-matchup-service/internal/server"
)

const appVersion = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Stdout, os.Stderr))
}

func run(ctx context.Context, stdout, stderr io.Writer) int {
	dotenvErr := config.LoadDotEnv()
	cfg := config.Load()
	// Logs go to stderr so stdout carries only the board.
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.Metrics.ServiceName,
		Version: appVersion,
		Output:  stderr,
	})
	if dotenvErr != nil {
		logging.Warn(logger, "failed to read .env", logging.FieldErr, dotenvErr)
	}

	svc, cleanup := server.NewBoardService(cfg, logger, nil)
	defer cleanup()

	b, err := svc.Build(ctx)
	if err != nil {
		fmt.Fprintln(stderr, render.FetchError(err))
		return 1
	}

	if err := render.Markdown(stdout, b, svc.Location()); err != nil {
		logging.Error(logger, "failed to write board", err)
		return 1
	}
	return 0
}
