package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable holding the config path
const ConfigEnv = "ESTATE_CONFIG"

const (
	DefaultBudget    = 30
	DefaultMaxBudget = 1_000_000
	DefaultPort      = 50051
)

// Config is the YAML configuration shared by all front ends
type Config struct {
	Solver SolverConfig `yaml:"solver"`
	Server ServerConfig `yaml:"server"`
}

// SolverConfig bounds the inputs accepted by the solver
type SolverConfig struct {
	DefaultBudget int `yaml:"default_budget"`
	MaxBudget     int `yaml:"max_budget"`
}

// ServerConfig configures the gRPC server
type ServerConfig struct {
	Port int `yaml:"port"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			DefaultBudget: DefaultBudget,
			MaxBudget:     DefaultMaxBudget,
		},
		Server: ServerConfig{
			Port: DefaultPort,
		},
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the
// file keep their default value.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ResolveConfig loads the config from path, falling back to ESTATE_CONFIG
// and finally to the defaults.
func ResolveConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config for inconsistent values
func (c *Config) Validate() error {
	if c.Solver.MaxBudget <= 0 {
		return fmt.Errorf("solver.max_budget must be positive, got %d", c.Solver.MaxBudget)
	}
	if c.Solver.DefaultBudget < 0 {
		return fmt.Errorf("solver.default_budget must not be negative, got %d", c.Solver.DefaultBudget)
	}
	if c.Solver.DefaultBudget > c.Solver.MaxBudget {
		return fmt.Errorf("solver.default_budget %d exceeds solver.max_budget %d",
			c.Solver.DefaultBudget, c.Solver.MaxBudget)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}
