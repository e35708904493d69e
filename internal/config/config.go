// Package config provides file- and environment-driven configuration for trustgraph.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all tunables. The five input/output paths are positional
// arguments and deliberately not part of it.
type Config struct {
	LogLevel          string  `yaml:"log_level"`
	LogFormat         string  `yaml:"log_format"`
	FalsePositiveRate float64 `yaml:"false_positive_rate"`
	MaxHops           int     `yaml:"max_hops"`
	HTTPAddr          string  `yaml:"http_addr"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "text",
		FalsePositiveRate: 0.1,
		MaxHops:           4,
	}
}

// Load builds the configuration with Read and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Read builds the configuration from defaults, then the optional YAML file at
// path, then TRUSTGRAPH_* environment variables. The result is not validated,
// so callers can apply further overrides first.
func Read(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.LogLevel = envOrDefault("TRUSTGRAPH_LOG_LEVEL", c.LogLevel)
	c.LogFormat = envOrDefault("TRUSTGRAPH_LOG_FORMAT", c.LogFormat)
	c.HTTPAddr = envOrDefault("TRUSTGRAPH_HTTP_ADDR", c.HTTPAddr)

	if v := os.Getenv("TRUSTGRAPH_FALSE_POSITIVE_RATE"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("TRUSTGRAPH_FALSE_POSITIVE_RATE must be a number: %w", err)
		}
		c.FalsePositiveRate = p
	}

	if v := os.Getenv("TRUSTGRAPH_MAX_HOPS"); v != "" {
		hops, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TRUSTGRAPH_MAX_HOPS must be an integer: %w", err)
		}
		c.MaxHops = hops
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
