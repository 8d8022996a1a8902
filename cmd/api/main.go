package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"launchpad/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Serve HTTP until SIGINT/SIGTERM.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		slog.Error("api stopped with error", "event", "api_run_failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app, err := bootstrap.BuildAPI(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			slog.Error("api close failed", "event", "api_close_failed", "error", err.Error())
		}
	}()
	return app.Run(ctx)
}
