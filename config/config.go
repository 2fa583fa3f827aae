package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/capital/persist"
)

// Config represents the complete tracker configuration
type Config struct {
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Chart   ChartConfig   `json:"chart" yaml:"chart"`
	Recent  int           `json:"recent" yaml:"recent"` // entries shown by the list command
}

// StorageConfig selects the persistence backend
type StorageConfig struct {
	Type string `json:"type" yaml:"type"` // "sqlite" or "json"
	Path string `json:"path" yaml:"path"`
}

// ChartConfig contains chart geometry and overlay defaults
type ChartConfig struct {
	Width             int `json:"width" yaml:"width"`
	Height            int `json:"height" yaml:"height"`
	MovingAverageDays int `json:"moving_average_days" yaml:"moving_average_days"`
}

// Open returns the configured persistence gateway.
func (sc StorageConfig) Open() (persist.Gateway, error) {
	switch sc.Type {
	case "sqlite":
		return persist.NewSQLite(sc.Path)
	case "json":
		return persist.NewFile(sc.Path), nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", sc.Type)
	}
}

// LoadFromFile loads configuration from a file (JSON or YAML)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Storage.Type != "sqlite" && c.Storage.Type != "json" {
		return fmt.Errorf("storage.type must be 'sqlite' or 'json'")
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart dimensions must be positive")
	}
	if c.Chart.MovingAverageDays <= 0 {
		return fmt.Errorf("chart.moving_average_days must be positive")
	}
	if c.Recent <= 0 {
		return fmt.Errorf("recent must be positive")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Type: "sqlite",
			Path: "./capital.sqlite",
		},
		Chart: ChartConfig{
			Width:             72,
			Height:            20,
			MovingAverageDays: 7,
		},
		Recent: 5,
	}
}
