package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCheck(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCheck() error {
	if c.Check.Concurrency < 0 {
		return errors.New("check.concurrency must be zero or positive")
	}
	if c.Check.FlacCompressionLevel < 0 || c.Check.FlacCompressionLevel > 8 {
		return fmt.Errorf("check.flac_compression_level must be between 0 and 8, got %d", c.Check.FlacCompressionLevel)
	}
	if c.Check.PaddingBytes <= 0 {
		return errors.New("check.padding_bytes must be positive")
	}
	if c.Check.MinFreeMiB < 0 {
		return errors.New("check.min_free_mib must be zero or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
