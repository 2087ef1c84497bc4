package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	loads  map[string]*load
}

// load tracks a single parse attempt for one config type. err is written
// inside once.Do and read only after it returns.
type load struct {
	once sync.Once
	err  error
}

var (
	globalCache = newConfigCache()

	defaultEnvLoaded sync.Once
)

func newConfigCache() *configCache {
	return &configCache{
		values: make(map[string]any),
		loads:  make(map[string]*load),
	}
}

// Load parses environment variables into v according to its `env` struct tags.
// The default .env file is read once per process if present. Each config type
// is parsed only once; later calls receive the cached copy.
//
//	type ReplayConfig struct {
//		Initial string `env:"TURNSTILE_INITIAL" envDefault:"locked"`
//		Script  string `env:"TURNSTILE_SCRIPT"`
//	}
//
//	var cfg ReplayConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// a missing .env file is not an error
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()

	if globalCache.get(key, v) {
		return nil
	}

	globalCache.mu.Lock()
	l, ok := globalCache.loads[key]
	if !ok {
		l = new(load)
		globalCache.loads[key] = l
	}
	globalCache.mu.Unlock()

	l.once.Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			l.err = errors.Join(ErrParsingConfig, parseErr)
			// allow a retry once the environment is fixed
			globalCache.mu.Lock()
			if globalCache.loads[key] == l {
				delete(globalCache.loads, key)
			}
			globalCache.mu.Unlock()
			return
		}

		globalCache.mu.Lock()
		globalCache.values[key] = *v
		globalCache.mu.Unlock()
	})
	if l.err != nil {
		return l.err
	}

	if globalCache.get(key, v) {
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if the configuration cannot be loaded.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache forgets every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
	globalCache.loads = make(map[string]*load)
}

func (c *configCache) get(key string, v any) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cached, ok := c.values[key]
	if !ok {
		return false
	}
	reflect.ValueOf(v).Elem().Set(reflect.ValueOf(cached))
	return true
}

func typeKey[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
