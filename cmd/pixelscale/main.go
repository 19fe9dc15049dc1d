package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"pixelscale/cmd/pixelscale/cmd"
	"pixelscale/internal/logging"
)

var (
	GitSHA string = "NA"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.SetDefault(logging.Logger(os.Stdout, false, slog.LevelInfo))
	ctx = logging.AppendCtx(ctx, slog.String("git", GitSHA))

	if err := cmd.NewRoot(ctx, GitSHA).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
