package config

import (
	"fmt"
	"net"

	"github.com/sirupsen/logrus"
)

// Hop bounds for the deepest trust feature.
const (
	minHops = 1
	maxHops = 10
)

// Validate checks every field. It is exported so callers can re-check after
// applying command-line overrides.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateGraph(); err != nil {
		return err
	}

	if err := c.validateHTTP(); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateLogging() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q is not valid: %w", c.LogLevel, err)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log format must be 'text' or 'json', got %q", c.LogFormat)
	}

	return nil
}

func (c *Config) validateGraph() error {
	if c.FalsePositiveRate <= 0 || c.FalsePositiveRate >= 1 {
		return fmt.Errorf("false positive rate must be between 0 and 1 exclusive, got %v", c.FalsePositiveRate)
	}

	if c.MaxHops < minHops || c.MaxHops > maxHops {
		return fmt.Errorf("max hops must be between %d and %d, got %d", minHops, maxHops, c.MaxHops)
	}

	return nil
}

// validateHTTP restricts the optional status listener to loopback addresses.
func (c *Config) validateHTTP() error {
	if c.HTTPAddr == "" {
		return nil
	}

	host, port, err := net.SplitHostPort(c.HTTPAddr)
	if err != nil {
		return fmt.Errorf("http address %q must be host:port: %w", c.HTTPAddr, err)
	}

	if port == "" {
		return fmt.Errorf("http address %q must include a port", c.HTTPAddr)
	}

	if host != "localhost" && host != "127.0.0.1" && host != "::1" {
		return fmt.Errorf("http address must be a loopback address (127.0.0.1, ::1, or localhost), got %q", host)
	}

	return nil
}
