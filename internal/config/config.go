package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	RuleSets          []string `env:"RPS_RULES" envDefault:"rpsls" envSeparator:","`
	RulesFile         string   `env:"RPS_RULES_FILE"`
	RoundsToWin       int      `env:"RPS_ROUNDS_TO_WIN" envDefault:"3"`
	Strategy          string   `env:"RPS_STRATEGY" envDefault:"random"`
	Draws             string   `env:"RPS_DRAWS" envDefault:"house"`
	Seed              uint64   `env:"RPS_SEED" envDefault:"0"`
	HistoryDir        string   `env:"RPS_HISTORY_DIR" envDefault:"."`
	HistoryFile       string   `env:"RPS_HISTORY_FILE" envDefault:"game_history.txt"`
	HistoryPerSession bool     `env:"RPS_HISTORY_PER_SESSION" envDefault:"true"`
	UI                string   `env:"RPS_UI" envDefault:"console"`
	LogLevel          string   `env:"RPS_LOG_LEVEL" envDefault:"warn"`
}

// LoadConfig loads the configuration from environment variables, reading
// .env first when it exists.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads the configuration from the current environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values env parsing cannot.
func (c *Config) Validate() error {
	if len(c.RuleSets) == 0 {
		return fmt.Errorf("RPS_RULES must name at least one rule set")
	}
	if c.RoundsToWin < 1 {
		return fmt.Errorf("RPS_ROUNDS_TO_WIN must be at least 1, got %d", c.RoundsToWin)
	}
	switch c.Strategy {
	case "random", "counter":
	default:
		return fmt.Errorf("RPS_STRATEGY must be random or counter, got %q", c.Strategy)
	}
	switch c.Draws {
	case "house", "replay":
	default:
		return fmt.Errorf("RPS_DRAWS must be house or replay, got %q", c.Draws)
	}
	switch c.UI {
	case "console", "tui":
	default:
		return fmt.Errorf("RPS_UI must be console or tui, got %q", c.UI)
	}
	return nil
}
