// Package machine provides a minimal generic finite state machine.
//
// A Machine holds a single current state value. The state type itself decides
// how to react to events by implementing State:
//
//	type State[S, E any] interface {
//	    Apply(event E) (S, error)
//	}
//
// Apply returns the successor state, or an error when the (state, event) pair
// has no successor. Dispatch stores the successor only when Apply succeeds, so
// a rejected event never leaves the machine in an intermediate state and the
// caller can carry on with a different event.
//
// # Usage
//
//	type Door string
//	type Knock struct{}
//
//	func (d Door) Apply(e Knock) (Door, error) {
//	    if d == "closed" {
//	        return "open", nil
//	    }
//	    return d, machine.InvalidEvent(d, e)
//	}
//
//	m := machine.New[Door, Knock]("closed")
//	_ = m.Dispatch(Knock{}) // m.State == "open"
//	err := m.Dispatch(Knock{})
//	if machine.IsInvalidEventError(err) {
//	    // m.State is still "open"
//	}
//
// The post-transition state is read from the State field (or Current), not
// from the return value of Dispatch.
//
// # Error Handling
//
// InvalidEvent builds a *TransitionError carrying the rejecting state and the
// rejected event. IsInvalidEventError matches it regardless of type
// parameters; AsTransitionError recovers the typed value.
//
// # Concurrency
//
// Machine is meant for a single owner and does no locking. Synchronized wraps
// a Machine with a mutex, structured logging and transition hooks for callers
// that share one instance between goroutines.
package machine
