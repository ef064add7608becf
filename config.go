package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the server configuration, read from the environment after an
// optional .env file has been loaded into it.
type Config struct {
	Addr      string `env:"VITALITY_ADDR" envDefault:"localhost:3000"`
	GinMode   string `env:"GIN_MODE"      envDefault:"release"`
	LogLevel  string `env:"LOG_LEVEL"     envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"    envDefault:"json"`

	// SessionTTL is how long an untouched assessment survives.
	SessionTTL    time.Duration `env:"SESSION_TTL"            envDefault:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`

	// ProcessingDelay pauses before scoring, for clients that animate a
	// "processing" screen. Zero disables it.
	ProcessingDelay time.Duration `env:"PROCESSING_DELAY" envDefault:"0s"`
}

// loadConfig loads envFile (a missing file is fine; real environment
// variables always win) and parses the result into a Config.
func loadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.SessionTTL <= 0 {
		return Config{}, errors.New("SESSION_TTL must be positive")
	}
	if cfg.SweepInterval <= 0 {
		return Config{}, errors.New("SESSION_SWEEP_INTERVAL must be positive")
	}
	if cfg.ProcessingDelay < 0 {
		return Config{}, errors.New("PROCESSING_DELAY must not be negative")
	}
	return cfg, nil
}
