package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"svw.info/woodoku/internal/dealer"
	"svw.info/woodoku/internal/score"
)

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// GameConfig controls how new games are dealt.
type GameConfig struct {
	HandSize int    `yaml:"hand_size"`
	Seed     int64  `yaml:"seed,omitempty"`    // 0 picks a fresh seed per game
	Catalog  string `yaml:"catalog,omitempty"` // empty uses the built-in shapes
}

// Config represents the top-level woodoku.yml configuration.
type Config struct {
	Version string       `yaml:"version"`
	Server  ServerConfig `yaml:"server"`
	Log     LogConfig    `yaml:"log"`
	Game    GameConfig   `yaml:"game"`
	Scoring score.Rules  `yaml:"scoring"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server:  ServerConfig{Addr: ":8080", ReadHeaderTimeout: 5 * time.Second},
		Log:     LogConfig{Level: "info"},
		Game:    GameConfig{HandSize: dealer.DefaultHandSize},
		Scoring: score.DefaultRules(),
	}
}

// Validate performs strict validation on the configuration.
func (c *Config) Validate() error {
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.ReadHeaderTimeout < 0 {
		return fmt.Errorf("server.read_header_timeout must not be negative")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level '%s' (expected debug, info, warn or error)", c.Log.Level)
	}
	if c.Game.HandSize < 1 {
		return fmt.Errorf("game.hand_size must be at least 1, got %d", c.Game.HandSize)
	}
	if c.Scoring.GroupPoints < 0 || c.Scoring.StreakPoints < 0 || c.Scoring.ComboPoints < 0 {
		return fmt.Errorf("scoring points must not be negative")
	}
	return nil
}

// Load reads path on top of Default, so a file only needs the keys it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}
