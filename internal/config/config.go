package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/orayew2002/excel-fixtures/internal/logger"
)

type Config struct {
	Output OutputConfig `toml:"output"`
	Sample SampleConfig `toml:"sample"`
}

type OutputConfig struct {
	Directory string `toml:"directory"`
}

type SampleConfig struct {
	Rows int `toml:"rows"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Directory: "templates"},
		Sample: SampleConfig{Rows: 10},
	}
}

// Load loads configuration from the specified config file path.
// A default config file is created there when none exists.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := Default()
		if err := Save(configPath, cfg); err != nil {
			return nil, fmt.Errorf("create default config: %w", err)
		}
		logger.Info("created default config file", "path", configPath)
		return cfg, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("load config file %s: %w", configPath, err)
	}

	// Fill in defaults for missing keys.
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "templates"
	}
	if cfg.Sample.Rows == 0 {
		cfg.Sample.Rows = 10
	}

	logger.Info("loaded configuration", "path", configPath)
	return &cfg, nil
}

// Save writes the configuration to the specified path, creating the
// directory if needed.
func Save(configPath string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return nil
}
