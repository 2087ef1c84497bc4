// Package turnstile models a coin-operated turnstile as a machine.State.
//
// A locked turnstile accepts a payment and unlocks; an unlocked turnstile lets
// one person through and locks again. Any other event is rejected with
// machine.InvalidEvent and leaves the turnstile as it was.
package turnstile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/machine/pkg/machine"
)

// State is the position of the turnstile arm.
type State string

const (
	Locked   State = "locked"
	Unlocked State = "unlocked"
)

// Event is something that happens at the turnstile.
type Event string

const (
	PaymentReceived Event = "payment_received"
	PersonEntering  Event = "person_entering"
)

var (
	ErrUnknownState = errors.New("unknown turnstile state")
	ErrUnknownEvent = errors.New("unknown turnstile event")
)

// Machine is a turnstile state machine.
type Machine = machine.Machine[State, Event]

// Apply implements machine.State.
func (s State) Apply(e Event) (State, error) {
	switch s {
	case Locked:
		if e == PaymentReceived {
			return Unlocked, nil
		}
	case Unlocked:
		if e == PersonEntering {
			return Locked, nil
		}
	}
	return s, machine.InvalidEvent(s, e)
}

// New returns a machine starting in the Locked state.
func New() *Machine {
	return machine.New[State, Event](Locked)
}

// States lists every turnstile state.
func States() []State {
	return []State{Locked, Unlocked}
}

// Events lists every turnstile event.
func Events() []Event {
	return []Event{PaymentReceived, PersonEntering}
}

// ParseState converts a case-insensitive state name.
func ParseState(s string) (State, error) {
	st := State(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case Locked, Unlocked:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownState, s)
}

// ParseEvent converts a case-insensitive event name.
func ParseEvent(s string) (Event, error) {
	e := Event(strings.ToLower(strings.TrimSpace(s)))
	switch e {
	case PaymentReceived, PersonEntering:
		return e, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEvent, s)
}
