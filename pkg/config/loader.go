package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/polyglot/pkg/cache"
)

type loaded struct {
	value any
	err   error
}

var (
	// configs holds one parsed copy per configuration type.
	configs = cache.NewOnce[string, loaded]()

	defaultEnvLoaded sync.Once
)

// LoadEnv reads one or more .env files into the process environment.
// Variables that are already set are not overridden.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load fills v from environment variables using `env` struct tags. Each
// configuration type is parsed once; later calls receive the cached copy.
// A failed parse is not cached, so the next call tries again.
//
//	type RedisConfig struct {
//		URL string        `env:"REDIS_URL,required"`
//		TTL time.Duration `env:"REDIS_DICT_TTL" envDefault:"24h"`
//	}
//
//	var cfg RedisConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	name := typeName[T]()
	res := configs.Get(name, func() loaded {
		var fresh T
		if err := env.Parse(&fresh); err != nil {
			return loaded{err: errors.Join(ErrParsingConfig, err)}
		}
		return loaded{value: fresh}
	})
	if res.err != nil {
		configs.Forget(name)
		return res.err
	}

	cfg, ok := res.value.(T)
	if !ok {
		return ErrInvalidConfigType
	}
	*v = cfg
	return nil
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops every cached configuration. Intended for tests.
func Reset() {
	for _, k := range configs.Keys() {
		configs.Forget(k)
	}
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
