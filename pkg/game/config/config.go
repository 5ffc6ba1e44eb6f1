// Package config loads generator settings from YAML.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"deepdelve/pkg/engine/logger"
)

// MinDimension is the smallest width or height a level may be generated at
const MinDimension = 20

// Config is the top-level configuration file
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Logging    logger.Config    `yaml:"logging"`
	Locale     LocaleConfig     `yaml:"locale"`
}

// GenerationConfig controls level generation
type GenerationConfig struct {
	// Seed of the whole run. Zero picks one from the clock.
	Seed int64 `yaml:"seed"`
	// Width and Height size the randomly built levels below the fixed
	// recipes. Zero keeps the generator default.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	RecordHistory bool `yaml:"record_history"`

	// SpawnTable is a YAML spawn table file, the embedded table when empty
	SpawnTable string `yaml:"spawn_table"`
}

// LocaleConfig selects gettext translations for level names
type LocaleConfig struct {
	Directory string `yaml:"directory"`
	Language  string `yaml:"language"`
	Domain    string `yaml:"domain"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Logging: logger.DefaultConfig(),
		Locale: LocaleConfig{
			Directory: "locales",
			Language:  "en_US",
			Domain:    "default",
		},
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.applyEnv()
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if seed := os.Getenv("DEEPDELVE_SEED"); seed != "" {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("DEEPDELVE_SEED: %w", err)
		}
		c.Generation.Seed = v
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	return nil
}

// Validate rejects sizes too small for the level recipes
func (c *Config) Validate() error {
	g := c.Generation
	if g.Width != 0 && g.Width < MinDimension {
		return fmt.Errorf("generation.width %d is below %d", g.Width, MinDimension)
	}
	if g.Height != 0 && g.Height < MinDimension {
		return fmt.Errorf("generation.height %d is below %d", g.Height, MinDimension)
	}
	return nil
}
