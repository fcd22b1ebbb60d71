/*
config.go - Environment-driven server configuration

PURPOSE:
  Central place for every knob the server reads from the environment.
  Timeouts are seconds. Defaults are tuned for a single-venue
  deployment on a LAN.

SEE ALSO:
  - cmd/server/main.go: Loads this at startup
*/
package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"8080"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Database struct {
		Path string `env:"PATH" envDefault:"shifts.db"`
	} `envPrefix:"DATABASE_"`
	CORS struct {
		Origins []string `env:"ORIGINS" envDefault:"http://localhost:5173,http://localhost:8080"`
	} `envPrefix:"CORS_"`
	// SeedDemo loads the demo roster on first run against an empty
	// database. Has no effect once employees exist.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) {
			// First error only, keeps the startup log readable.
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}
	return cfg, nil
}
