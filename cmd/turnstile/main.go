// Command turnstile replays events against a coin-operated turnstile and
// prints every step.
//
// Events are taken from the command line, or from the YAML script named by
// TURNSTILE_SCRIPT:
//
//	turnstile person_entering payment_received person_entering
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/machine/pkg/config"
	"github.com/dmitrymomot/machine/pkg/logger"
)

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg, os.Stderr)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Args[1:], os.Stdout, log); err != nil {
		log.ErrorContext(ctx, "replay failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

// newLogger applies the environment defaults first so that LOG_LEVEL wins.
func newLogger(cfg Config, w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(w),
		logger.WithContextExtractors(runIDExtractor),
	)
}
