package main

import "github.com/dmitrymomot/machine/pkg/config"

// Config is read from the environment (and an optional .env file).
type Config struct {
	Env      config.Environment `env:"APP_ENV" envDefault:"development"`
	Name     string             `env:"TURNSTILE_NAME" envDefault:"turnstile"`
	Initial  string             `env:"TURNSTILE_INITIAL" envDefault:"locked"`
	Script   string             `env:"TURNSTILE_SCRIPT"`
	Strict   bool               `env:"TURNSTILE_STRICT" envDefault:"false"`
	LogLevel string             `env:"LOG_LEVEL" envDefault:"info"`
}
