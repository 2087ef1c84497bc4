package machine

// State is implemented by state types that know how to react to events.
// Apply must not modify the receiver: it returns the successor state, or an
// error (normally built with InvalidEvent) when the event is not accepted.
type State[S, E any] interface {
	Apply(event E) (S, error)
}

// Machine holds the current state of a finite state machine.
// It is not safe for concurrent use; see Synchronized.
type Machine[S State[S, E], E any] struct {
	// State is the current state. It only changes on a successful Dispatch.
	State S

	initial S
}

// New creates a machine positioned at the given initial state.
func New[S State[S, E], E any](initial S) *Machine[S, E] {
	return &Machine[S, E]{
		State:   initial,
		initial: initial,
	}
}

// Dispatch applies event to the current state. The state is replaced only when
// Apply succeeds; otherwise it is left as is and the error is returned unchanged.
func (m *Machine[S, E]) Dispatch(event E) error {
	next, err := m.State.Apply(event)
	if err != nil {
		return err
	}
	m.State = next
	return nil
}

// Current returns the current state, the same value as the State field.
func (m *Machine[S, E]) Current() S {
	return m.State
}

// Reset moves the machine back to the state it was created with.
func (m *Machine[S, E]) Reset() {
	m.State = m.initial
}
