// Package config loads World construction parameters from a TOML file,
// grounded on rdtc8822-debug-L1JGO-Whale's internal/config/config.go
// Load/defaults pair and its LoggingConfig/newLogger helper in
// cmd/l1jgo/main.go.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config configures a World's entity table sizing and logging.
type Config struct {
	World   WorldConfig   `toml:"world"`
	Logging LoggingConfig `toml:"logging"`
}

// WorldConfig mirrors the two constructor arguments of archecs.NewWorld
// (§6 "Configuration").
type WorldConfig struct {
	InitialCapacity int `toml:"initial_capacity"`
	GrowStep        int `toml:"grow_step"`
}

// LoggingConfig selects the World's zap logger's verbosity and encoding.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads and parses a TOML file at path, filling in defaults() for any
// field the file doesn't set.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		World: WorldConfig{
			InitialCapacity: 1000,
			GrowStep:        1000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// NewLogger builds a zap.Logger from cfg, defaulting to info level if Level
// doesn't parse.
func NewLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
