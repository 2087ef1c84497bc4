package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/machine/pkg/logger"
	"github.com/dmitrymomot/machine/pkg/machine"
	"github.com/dmitrymomot/machine/pkg/script"
	"github.com/dmitrymomot/machine/pkg/turnstile"
)

var (
	errNoEvents       = errors.New("no events to replay")
	errRejectedEvents = errors.New("events were rejected")
)

type runIDKey struct{}

func runIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(runIDKey{}).(uuid.UUID)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.RunID(id), true
}

type replay struct {
	name    string
	initial turnstile.State
	events  []turnstile.Event
}

// plan resolves the machine name, initial state and event list from either
// the configured script or the command line arguments. All names are
// validated before anything is dispatched.
func plan(ctx context.Context, cfg Config, args []string) (*replay, error) {
	name, initial, events := cfg.Name, cfg.Initial, args

	if cfg.Script != "" {
		s, err := script.Load(ctx, cfg.Script)
		if err != nil {
			return nil, err
		}
		if s.Name != "" {
			name = s.Name
		}
		initial, events = s.Initial, s.Events
	}

	if len(events) == 0 {
		return nil, errNoEvents
	}

	st, err := turnstile.ParseState(initial)
	if err != nil {
		return nil, err
	}

	r := &replay{
		name:    name,
		initial: st,
		events:  make([]turnstile.Event, 0, len(events)),
	}
	for i, raw := range events {
		e, err := turnstile.ParseEvent(raw)
		if err != nil {
			return nil, fmt.Errorf("event #%d: %w", i+1, err)
		}
		r.events = append(r.events, e)
	}
	return r, nil
}

// run dispatches every planned event, writing one line per step and the final
// state to out. Rejected events are reported and skipped; in strict mode they
// make run fail once the replay is complete.
func run(ctx context.Context, cfg Config, args []string, out io.Writer, log *slog.Logger) error {
	r, err := plan(ctx, cfg, args)
	if err != nil {
		return err
	}

	runID := uuid.New()
	ctx = context.WithValue(ctx, runIDKey{}, runID)

	m := machine.NewSynchronized[turnstile.State, turnstile.Event](r.initial,
		machine.WithLogger(log),
		machine.WithName(r.name),
	)

	log.InfoContext(ctx, "replay started",
		logger.MachineID(m.ID()),
		logger.MachineName(r.name),
		logger.State(r.initial),
		slog.Int("events", len(r.events)),
	)

	rejected := 0
	for _, e := range r.events {
		from := m.Current()
		err := m.Dispatch(ctx, e)
		switch {
		case err == nil:
			fmt.Fprintf(out, "%s: %s -> %s\n", e, from, m.Current())
		case machine.IsInvalidEventError(err):
			rejected++
			fmt.Fprintf(out, "%s: rejected in %s\n", e, from)
		default:
			return err
		}
	}

	fmt.Fprintf(out, "final state: %s\n", m.Current())

	log.InfoContext(ctx, "replay finished",
		logger.MachineID(m.ID()),
		logger.State(m.Current()),
		slog.Int("rejected", rejected),
	)

	if cfg.Strict && rejected > 0 {
		return fmt.Errorf("%w: %d of %d", errRejectedEvents, rejected, len(r.events))
	}
	return nil
}
