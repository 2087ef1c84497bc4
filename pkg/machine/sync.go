package machine

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/machine/pkg/logger"
)

// TransitionHook observes a successful transition.
type TransitionHook[S, E any] func(ctx context.Context, from, to S, event E)

// RejectHook observes a dispatch that left the state unchanged.
type RejectHook[S, E any] func(ctx context.Context, current S, event E, err error)

// Synchronized is a Machine guarded by a mutex, so it can be shared between
// goroutines. Dispatches are serialized, not queued: each call applies its
// event against whatever state the previous call left behind.
type Synchronized[S State[S, E], E any] struct {
	mu      sync.RWMutex
	machine *Machine[S, E]

	id     uuid.UUID
	name   string
	logger *slog.Logger

	hooksMu      sync.RWMutex
	onTransition []TransitionHook[S, E]
	onReject     []RejectHook[S, E]
}

// NewSynchronized creates a goroutine-safe machine at the given initial state.
func NewSynchronized[S State[S, E], E any](initial S, opts ...Option) *Synchronized[S, E] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Synchronized[S, E]{
		machine: New[S, E](initial),
		id:      o.id,
		name:    o.name,
		logger: o.logger.With(
			logger.MachineID(o.id),
			logger.MachineName(o.name),
		),
	}
}

// Dispatch applies event under the lock. It has the same contract as
// Machine.Dispatch and additionally returns ctx.Err() without touching the
// state when ctx is already done. Hooks run after the lock is released.
func (s *Synchronized[S, E]) Dispatch(ctx context.Context, event E) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	from, to, err := s.apply(event)
	if err != nil {
		s.logger.WarnContext(ctx, "event rejected",
			logger.State(from),
			logger.Event(event),
			logger.Error(err),
		)
		for _, fn := range s.rejectHooks() {
			fn(ctx, from, event, err)
		}
		return err
	}

	s.logger.DebugContext(ctx, "state transition",
		logger.Transition(from, to),
		logger.Event(event),
	)
	for _, fn := range s.transitionHooks() {
		fn(ctx, from, to, event)
	}
	return nil
}

// apply runs the transition under the lock. The lock is released even when
// the state's Apply panics.
func (s *Synchronized[S, E]) apply(event E) (from, to S, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	from = s.machine.State
	err = s.machine.Dispatch(event)
	return from, s.machine.State, err
}

// Current returns the current state.
func (s *Synchronized[S, E]) Current() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.machine.State
}

// Reset moves the machine back to its initial state.
func (s *Synchronized[S, E]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machine.Reset()
}

// ID returns the identifier attached to every log record of the machine.
func (s *Synchronized[S, E]) ID() uuid.UUID {
	return s.id
}

// Name returns the name set with WithName, or an empty string.
func (s *Synchronized[S, E]) Name() string {
	return s.name
}

// OnTransition registers fn to be called after every successful dispatch.
// Nil functions are ignored.
func (s *Synchronized[S, E]) OnTransition(fn TransitionHook[S, E]) {
	if fn == nil {
		return
	}
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.onTransition = append(s.onTransition, fn)
}

// OnReject registers fn to be called after every failed dispatch.
// Nil functions are ignored.
func (s *Synchronized[S, E]) OnReject(fn RejectHook[S, E]) {
	if fn == nil {
		return
	}
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.onReject = append(s.onReject, fn)
}

func (s *Synchronized[S, E]) transitionHooks() []TransitionHook[S, E] {
	s.hooksMu.RLock()
	defer s.hooksMu.RUnlock()
	return s.onTransition
}

func (s *Synchronized[S, E]) rejectHooks() []RejectHook[S, E] {
	s.hooksMu.RLock()
	defer s.hooksMu.RUnlock()
	return s.onReject
}
