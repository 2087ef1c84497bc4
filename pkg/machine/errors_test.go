package machine_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/machine/pkg/machine"
)

func TestTransitionError(t *testing.T) {
	t.Parallel()

	err := machine.InvalidEvent(locked, open)
	assert.Equal(t, "invalid event 'open' for state 'locked'", err.Error())
	assert.Equal(t, locked, err.State)
	assert.Equal(t, open, err.Event)
	assert.ErrorIs(t, err, machine.ErrInvalidEvent)
}

func TestIsInvalidEventError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "transition error", err: machine.InvalidEvent(1, "x"), want: true},
		{name: "wrapped", err: fmt.Errorf("dispatch: %w", machine.InvalidEvent(closed, lock)), want: true},
		{name: "sentinel", err: machine.ErrInvalidEvent, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, machine.IsInvalidEventError(tt.err))
		})
	}
}

func TestAsTransitionError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("door: %w", machine.InvalidEvent(opened, lock))

	terr, ok := machine.AsTransitionError[doorState, doorEvent](wrapped)
	require.True(t, ok)
	assert.Equal(t, opened, terr.State)
	assert.Equal(t, lock, terr.Event)

	_, ok = machine.AsTransitionError[string, string](wrapped)
	assert.False(t, ok, "different type parameters must not match")

	_, ok = machine.AsTransitionError[doorState, doorEvent](errors.New("boom"))
	assert.False(t, ok)
}
