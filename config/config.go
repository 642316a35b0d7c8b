package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete tracker configuration
type Config struct {
	Store      StoreConfig      `json:"store" yaml:"store"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Export     ExportConfig     `json:"export" yaml:"export"`
}

// StoreConfig locates the persisted snapshot
type StoreConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// SimulationConfig contains projection and Monte Carlo defaults
type SimulationConfig struct {
	Principal   float64 `json:"principal" yaml:"principal"`
	APYPercent  float64 `json:"apy_percent" yaml:"apy_percent"`
	Days        int     `json:"days" yaml:"days"`
	Trials      int     `json:"trials" yaml:"trials"`
	Compounding float64 `json:"compounding,omitempty" yaml:"compounding,omitempty"`
}

// ExportConfig contains export destinations
type ExportConfig struct {
	TradesCSV string `json:"trades_csv,omitempty" yaml:"trades_csv,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
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

	// Determine format by extension
	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
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
	if c.Store.DBPath == "" {
		return fmt.Errorf("store.db_path is required")
	}
	if c.Simulation.Principal < 0 {
		return fmt.Errorf("simulation.principal must not be negative")
	}
	if c.Simulation.Days < 0 {
		return fmt.Errorf("simulation.days must not be negative")
	}
	if c.Simulation.Trials < 1 {
		return fmt.Errorf("simulation.trials must be at least 1")
	}
	if c.Simulation.Compounding < 0 {
		return fmt.Errorf("simulation.compounding must not be negative")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			DBPath: "./yieldtrack.sqlite",
		},
		Simulation: SimulationConfig{
			Principal:  1000,
			APYPercent: 7.5,
			Days:       365,
			Trials:     1000,
		},
		Export: ExportConfig{
			TradesCSV: "./trades.csv",
		},
	}
}
