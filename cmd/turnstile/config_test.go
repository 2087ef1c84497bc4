package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/machine/pkg/config"
)

func TestConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "TURNSTILE_NAME", "TURNSTILE_INITIAL", "TURNSTILE_SCRIPT", "TURNSTILE_STRICT", "LOG_LEVEL"} {
		os.Unsetenv(key)
	}
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var cfg Config
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, config.Development, cfg.Env)
	assert.Equal(t, "turnstile", cfg.Name)
	assert.Equal(t, "locked", cfg.Initial)
	assert.Empty(t, cfg.Script)
	assert.False(t, cfg.Strict)
	assert.Equal(t, "info", cfg.LogLevel)

	buf := &bytes.Buffer{}
	log := newLogger(cfg, buf)
	log.Debug("hidden")
	assert.Empty(t, buf.String(), "default config must not log at debug level")
	log.Info("shown")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "env=development")
}

func TestNewLogger_LevelOverride(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := newLogger(Config{Env: config.Production, Name: "turnstile", LogLevel: "debug"}, buf)
	log.Debug("visible")
	assert.Contains(t, buf.String(), `"msg":"visible"`)
	assert.Contains(t, buf.String(), `"env":"production"`)
}
