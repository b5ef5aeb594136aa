package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	GameName        string   `env:"GAME_NAME" envDefault:"classic"`
	Players         []string `env:"PLAYERS" envSeparator:"," envDefault:"Horse,Hat,Car"`
	Rounds          int      `env:"ROUNDS" envDefault:"100"`
	StartingBalance int      `env:"STARTING_BALANCE" envDefault:"1500"`
	DiceSeed        int64    `env:"DICE_SEED"`
	LayoutPath      string   `env:"BOARD_LAYOUT"`
	SpecialsPath    string   `env:"BOARD_SPECIALS"`
	RedisURL        string   `env:"REDIS_URL"`
	LogLevel        string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string   `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	for i, p := range cfg.Players {
		cfg.Players[i] = strings.TrimSpace(p)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if len(c.Players) < 2 {
		return errors.New("at least two players are required")
	}
	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if p == "" {
			return errors.New("player names must not be empty")
		}
		if seen[p] {
			return fmt.Errorf("duplicate player %q", p)
		}
		seen[p] = true
	}
	if c.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	}
	if c.StartingBalance < 0 {
		return fmt.Errorf("starting balance must not be negative, got %d", c.StartingBalance)
	}
	return nil
}
