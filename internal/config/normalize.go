package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeMedia(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeExport()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.IndexDB, err = expandPath(c.Paths.IndexDB); err != nil {
		return fmt.Errorf("paths.index_db: %w", err)
	}
	if strings.TrimSpace(c.Paths.ExtractDir) == "" {
		c.Paths.ExtractDir = defaultExtractDir
	}
	if c.Paths.ExtractDir, err = expandPath(c.Paths.ExtractDir); err != nil {
		return fmt.Errorf("paths.extract_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeMedia() error {
	locations := c.Media.SearchLocations
	if len(locations) == 0 {
		if value, ok := os.LookupEnv(MediaLocationEnv); ok {
			locations = filepath.SplitList(value)
		}
	}
	seen := make(map[string]struct{}, len(locations))
	out := make([]string, 0, len(locations))
	for _, loc := range locations {
		loc = strings.TrimSpace(loc)
		if loc == "" {
			continue
		}
		expanded, err := expandPath(loc)
		if err != nil {
			return fmt.Errorf("media.search_locations: %w", err)
		}
		if _, exists := seen[expanded]; exists {
			continue
		}
		seen[expanded] = struct{}{}
		out = append(out, expanded)
	}
	c.Media.SearchLocations = out
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}

func (c *Config) normalizeExport() {
	c.Export.CompressionLevel = strings.ToLower(strings.TrimSpace(c.Export.CompressionLevel))
	if c.Export.CompressionLevel == "" {
		c.Export.CompressionLevel = defaultCompressionLevel
	}
}
