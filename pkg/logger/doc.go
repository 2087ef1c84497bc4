// Package logger builds *slog.Logger instances for state machine binaries and
// provides attribute helpers so that machines, states and events are logged
// under consistent keys.
//
// New takes functional options selecting the output format, level and
// destination. WithEnvironment applies development or production defaults,
// and WithContextValue copies a context value (for example a run id) into
// every record logged through the *Context methods.
//
//	log := logger.New(
//	    logger.WithEnvironment(config.Development, "turnstile"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "transition",
//	    logger.Transition(from, to),
//	    logger.Event(evt),
//	)
//
// Helpers that receive a nil value return an empty slog.Attr, which slog
// omits from the output.
package logger
