package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options read from the environment.
type Config struct {
	// Seed for die rolls. A seed of 0 means a random seed will be generated.
	Seed int64 `env:"LUDO_SEED"`
	// PlayerCount selects how many of the default seats play (2-4).
	PlayerCount int `env:"LUDO_PLAYERS" envDefault:"2"`
}

// LoadConfig parses configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
