// Package config provides YAML-based configuration loading with environment
// overrides for the puzzle, its storage and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/game"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines gameplay parameters.
type GameConfig struct {
	Variant           string  `yaml:"variant" env:"T2048_VARIANT"`
	Spawn4Probability float64 `yaml:"spawn4_probability" env:"T2048_SPAWN4_PROBABILITY"`
	TickRate          int     `yaml:"tick_rate" env:"T2048_TICK_RATE"`
	Seed              int64   `yaml:"seed" env:"T2048_SEED"` // 0 = time based
}

// StorageConfig defines where finished sessions are recorded.
type StorageConfig struct {
	Path string `yaml:"path" env:"T2048_DB"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address" env:"T2048_SSH_ADDRESS"`
	HostKeyPath string        `yaml:"host_key_path" env:"T2048_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"T2048_IDLE_TIMEOUT"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level" env:"T2048_LOG_LEVEL"`
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if !knownVariant(c.Game.Variant) {
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, c.Game.Variant)
	}
	if c.Game.Spawn4Probability < 0 || c.Game.Spawn4Probability > 1 {
		return fmt.Errorf("%w: spawn4_probability %v outside [0, 1]", ErrInvalidConfig, c.Game.Spawn4Probability)
	}
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.Game.TickRate)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("%w: storage.path is empty", ErrInvalidConfig)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: idle_timeout is negative", ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func knownVariant(id string) bool {
	for _, v := range game.Variants() {
		if v.ID == id {
			return true
		}
	}
	return false
}
