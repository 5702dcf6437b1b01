package app

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	DataFile string `toml:"data_file"`
	LogLevel string `toml:"log_level"`
	Rates    Rates  `toml:"rates"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Rates:    DefaultRates(),
	}
}

// loadConfig reads an optional TOML file on top of the defaults. A missing
// file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return c.Rates.validate()
}
