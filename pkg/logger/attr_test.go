package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/machine/pkg/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestMachineAttrs(t *testing.T) {
	t.Parallel()
	id := uuid.New()

	tests := []struct {
		name  string
		attr  slog.Attr
		key   string
		value string
	}{
		{name: "machine id", attr: logger.MachineID(id), key: "machine_id", value: id.String()},
		{name: "run id", attr: logger.RunID(id), key: "run_id", value: id.String()},
		{name: "machine name", attr: logger.MachineName("lobby"), key: "machine", value: "lobby"},
		{name: "component", attr: logger.Component("replay"), key: "component", value: "replay"},
		{name: "state", attr: logger.State("locked"), key: "state", value: "locked"},
		{name: "event", attr: logger.Event(42), key: "event", value: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.value, tt.attr.Value.String())
		})
	}
}

func TestEmptyAttrs(t *testing.T) {
	t.Parallel()
	assert.True(t, logger.MachineName("").Equal(slog.Attr{}))
	assert.True(t, logger.MachineID(nil).Equal(slog.Attr{}))
	assert.True(t, logger.RunID(nil).Equal(slog.Attr{}))
}

func TestTransition(t *testing.T) {
	t.Parallel()
	attr := logger.Transition("locked", "unlocked")
	require.Equal(t, "transition", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "from", g[0].Key)
	assert.Equal(t, "locked", g[0].Value.String())
	assert.Equal(t, "to", g[1].Key)
	assert.Equal(t, "unlocked", g[1].Value.String())
}
