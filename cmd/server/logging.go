package main

import (
	"context"
	"io"
	"log/slog"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"

	"github.com/KirkDiggler/rpg-codex/internal/config"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

// setupLogger installs the default logger. The server logs JSON, local tools log text.
func setupLogger(cfg *config.Config, w io.Writer, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// interceptorLogger adapts slog to the grpc middleware logger
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func recoveryHandler(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "panic recovered", "panic", p)
	return errors.ToGRPCError(errors.Internal("internal error"))
}
