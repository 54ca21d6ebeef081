package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// Load populates cfg from environment variables according to its `env` struct
// tags. A .env file in the working directory, if present, is loaded once per
// process before the first parse; a missing file is not an error.
//
// Example:
//
//	type HTTPConfig struct {
//		Addr     string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Shutdown time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg HTTPConfig
//	if err := config.Load(&cfg); err != nil { … }
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// The .env file is a development convenience; absence is normal.
		_ = godotenv.Load()
	})

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}
