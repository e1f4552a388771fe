package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration structs keyed by type name.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	cache = newCache()

	defaultEnvLoaded sync.Once
)

func newCache() *configCache {
	return &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

// Load parses the environment into v. Each configuration type is parsed once;
// later calls copy the cached value. The default .env file is loaded on the
// first call if it exists.
//
//	type DatabaseConfig struct {
//		DSN string `env:"DATABASE_URL,required"`
//	}
//
//	var db DatabaseConfig
//	if err := config.Load(&db); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	name := typeName[T]()
	if cached(name, v) {
		return nil
	}

	cache.mu.Lock()
	once, ok := cache.onces[name]
	if !ok {
		once = new(sync.Once)
		cache.onces[name] = once
	}
	cache.mu.Unlock()

	var err error
	once.Do(func() {
		if perr := env.Parse(v); perr != nil {
			err = errors.Join(ErrParsingConfig, perr)
			// Allow a later call to retry, e.g. after the environment was fixed.
			cache.mu.Lock()
			delete(cache.onces, name)
			cache.mu.Unlock()
			return
		}
		cache.mu.Lock()
		cache.values[name] = *v
		cache.mu.Unlock()
	})
	if err != nil {
		return err
	}

	if cached(name, v) {
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Errorf("config: load %s: %w", typeName[T](), err))
	}
}

// ForceReload drops the cached value of T and parses the environment again.
func ForceReload[T any](v *T) error {
	name := typeName[T]()
	cache.mu.Lock()
	delete(cache.values, name)
	delete(cache.onces, name)
	cache.mu.Unlock()
	return Load(v)
}

// ResetCache forgets every cached configuration.
func ResetCache() {
	cache.mu.Lock()
	cache.values = make(map[string]any)
	cache.onces = make(map[string]*sync.Once)
	cache.mu.Unlock()
}

// LoadEnv loads the given .env files, or ./.env when none is given.
// Variables already present in the environment are kept.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(err)
	}
}

// LoadFile loads settings from the given files into the process environment,
// overriding variables that are already set. It is meant for deployments
// where settings ship as a file rather than through the environment.
func LoadFile(files ...string) error {
	if len(files) == 0 {
		return fmt.Errorf("%w: no file given", ErrLoadingEnvFile)
	}
	if err := godotenv.Overload(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

func cached[T any](name string, v *T) bool {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	val, ok := cache.values[name].(T)
	if ok {
		*v = val
	}
	return ok
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
