package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMedia(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateExport(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must be set")
	}
	if strings.TrimSpace(c.Paths.IndexDB) == "" {
		return errors.New("paths.index_db must be set")
	}
	if info, err := os.Stat(c.Paths.IndexDB); err == nil && info.IsDir() {
		return fmt.Errorf("paths.index_db must be a file, %s is a directory", c.Paths.IndexDB)
	}
	return nil
}

func (c *Config) validateMedia() error {
	for _, loc := range c.Media.SearchLocations {
		if info, err := os.Stat(loc); err == nil && !info.IsDir() {
			return fmt.Errorf("media.search_locations must list directories, %s is a file", loc)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateExport() error {
	if !slices.Contains(CompressionLevels, c.Export.CompressionLevel) {
		return fmt.Errorf("export.compression_level must be one of %s (got %q)",
			strings.Join(CompressionLevels, ", "), c.Export.CompressionLevel)
	}
	return nil
}
