// sgcctl is the companion admin CLI for the management backend. It operates
// directly on the configured data directory, so it must not run while the
// server is accepting writes.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/middleware"
)

func main() {
	// Services log through slog; keep terminal output to the command results.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	Execute(middleware.WithLogger(context.Background(), logger))
}
