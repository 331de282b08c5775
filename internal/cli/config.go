package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables for the demo and benchmark commands.
type Config struct {
	Demo  DemoConfig  `yaml:"demo"`
	Bench BenchConfig `yaml:"bench"`
}

// DemoConfig configures the demo command.
type DemoConfig struct {
	Dimension int     `yaml:"dimension"`
	Vectors   int     `yaml:"vectors"`
	Threshold float64 `yaml:"threshold"`
	Seed      int64   `yaml:"seed"`
}

// BenchConfig configures the bench command.
type BenchConfig struct {
	Vectors   int   `yaml:"vectors"`
	Dimension int   `yaml:"dimension"`
	Keyspaces int   `yaml:"keyspaces"`
	Searches  int   `yaml:"searches"`
	Writers   int   `yaml:"writers"`
	Seed      int64 `yaml:"seed"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Demo: DemoConfig{
			Dimension: 3,
			Vectors:   5,
			Threshold: 0.5,
			Seed:      1,
		},
		Bench: BenchConfig{
			Vectors:   10000,
			Dimension: 128,
			Keyspaces: 4,
			Searches:  100,
			Writers:   4,
			Seed:      1,
		},
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Demo.Dimension <= 0 {
		return fmt.Errorf("demo.dimension must be positive, got %d", c.Demo.Dimension)
	}
	if c.Demo.Vectors <= 0 {
		return fmt.Errorf("demo.vectors must be positive, got %d", c.Demo.Vectors)
	}
	if c.Bench.Dimension <= 0 {
		return fmt.Errorf("bench.dimension must be positive, got %d", c.Bench.Dimension)
	}
	if c.Bench.Vectors <= 0 {
		return fmt.Errorf("bench.vectors must be positive, got %d", c.Bench.Vectors)
	}
	if c.Bench.Keyspaces <= 0 {
		return fmt.Errorf("bench.keyspaces must be positive, got %d", c.Bench.Keyspaces)
	}
	if c.Bench.Searches <= 0 {
		return fmt.Errorf("bench.searches must be positive, got %d", c.Bench.Searches)
	}
	if c.Bench.Writers <= 0 {
		return fmt.Errorf("bench.writers must be positive, got %d", c.Bench.Writers)
	}
	return nil
}
