package testsupport

import (
	"path/filepath"
	"testing"

	"aafkit/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.IndexDB = filepath.Join(base, "index", "index.db")
	cfgVal.Paths.ExtractDir = filepath.Join(base, "extract")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithMediaLocations sets the external essence search locations. Relative
// entries are placed under the config's temp directory.
func WithMediaLocations(locations ...string) ConfigOption {
	return func(b *configBuilder) {
		out := make([]string, 0, len(locations))
		for _, loc := range locations {
			if !filepath.IsAbs(loc) {
				loc = filepath.Join(b.baseDir, loc)
			}
			out = append(out, loc)
		}
		b.cfg.Media.SearchLocations = out
	}
}

// WithVendor replaces the vendor section.
func WithVendor(vendor config.Vendor) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Vendor = vendor
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}
