package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeTools()
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeTools() {
	c.Tools.Flac = strings.TrimSpace(c.Tools.Flac)
	if c.Tools.Flac == "" {
		c.Tools.Flac = defaultFlacBinary
	}
	c.Tools.Metaflac = strings.TrimSpace(c.Tools.Metaflac)
	if c.Tools.Metaflac == "" {
		c.Tools.Metaflac = defaultMetaflacBinary
	}
	c.Tools.MP3Val = strings.TrimSpace(c.Tools.MP3Val)
	if c.Tools.MP3Val == "" {
		c.Tools.MP3Val = defaultMP3ValBinary
	}
}

func (c *Config) normalizeHistory() error {
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath
	}
	expanded, err := ExpandPath(c.History.Path)
	if err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	c.History.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) == "" {
		c.Logging.Dir = defaultLogDir
	}
	expanded, err := ExpandPath(c.Logging.Dir)
	if err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	c.Logging.Dir = expanded
	return nil
}
