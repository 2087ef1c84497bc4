package machine

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/machine/pkg/logger"
)

// Option configures a Synchronized machine during construction.
type Option func(*options)

type options struct {
	id     uuid.UUID
	name   string
	logger *slog.Logger
}

func defaultOptions() *options {
	return &options{
		id:     uuid.New(),
		logger: logger.Discard(),
	}
}

// WithLogger sets the logger used to record transitions and rejections.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithName sets a human readable machine name that is attached to log records.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithID overrides the random identifier assigned to the machine.
func WithID(id uuid.UUID) Option {
	return func(o *options) {
		if id != uuid.Nil {
			o.id = id
		}
	}
}
