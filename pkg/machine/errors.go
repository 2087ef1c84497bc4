package machine

import (
	"errors"
	"fmt"
)

// ErrInvalidEvent is wrapped by every TransitionError.
var ErrInvalidEvent = errors.New("invalid event")

// TransitionError reports an event that the current state does not accept.
type TransitionError[S, E any] struct {
	State S
	Event E
}

func (e *TransitionError[S, E]) Error() string {
	return fmt.Sprintf("invalid event '%v' for state '%v'", e.Event, e.State)
}

func (e *TransitionError[S, E]) Unwrap() error {
	return ErrInvalidEvent
}

// InvalidEvent builds the error a state returns from Apply when it has no
// successor for event.
func InvalidEvent[S, E any](state S, event E) *TransitionError[S, E] {
	return &TransitionError[S, E]{
		State: state,
		Event: event,
	}
}

func IsInvalidEventError(err error) bool {
	return errors.Is(err, ErrInvalidEvent)
}

// AsTransitionError extracts the rejecting state and event from err.
func AsTransitionError[S, E any](err error) (*TransitionError[S, E], bool) {
	var e *TransitionError[S, E]
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
