// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (reading an optional .env file) and
// github.com/caarlos0/env/v11 (mapping variables onto struct fields via
// `env` tags). Each configuration type is parsed once and cached for the
// lifetime of the process; ResetCache clears the cache in tests.
//
//	type Config struct {
//		Env     config.Environment `env:"APP_ENV" envDefault:"development"`
//		Initial string             `env:"TURNSTILE_INITIAL" envDefault:"locked"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Environment implements encoding.TextUnmarshaler, so it can be used as a
// field type and rejects unknown names at load time.
package config
