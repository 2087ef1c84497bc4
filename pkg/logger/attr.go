package logger

import (
	"fmt"
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error". A nil error yields an empty Attr,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// MachineID records a machine identifier under the key "machine_id".
func MachineID(id fmt.Stringer) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.String("machine_id", id.String())
}

func MachineName(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("machine", name)
}

// State records a state value under the key "state" using its %v form.
func State(s any) slog.Attr {
	return slog.String("state", fmt.Sprint(s))
}

// Transition records the source and target states of a transition.
func Transition(from, to any) slog.Attr {
	return Group("transition",
		slog.String("from", fmt.Sprint(from)),
		slog.String("to", fmt.Sprint(to)),
	)
}

// Event records an event value under the key "event" using its %v form.
func Event(e any) slog.Attr {
	return slog.String("event", fmt.Sprint(e))
}

func RunID(id fmt.Stringer) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.String("run_id", id.String())
}
