package config

import "path/filepath"

const (
	defaultConfigPath       = "~/.config/aafkit/config.toml"
	projectConfigName       = "aafkit.toml"
	defaultExtractDir       = "."
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 30
	defaultCompressionLevel = "default"

	// MediaLocationEnv lists search locations, separated like PATH, used when
	// the config names none.
	MediaLocationEnv = "AAFKIT_MEDIA_LOCATION"
)

// CompressionLevels are the accepted export.compression_level values.
var CompressionLevels = []string{"fastest", "default", "better", "best"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	data := defaultDataDir()
	return Config{
		Paths: Paths{
			LogDir:     filepath.Join(data, "logs"),
			IndexDB:    filepath.Join(data, "index.db"),
			ExtractDir: defaultExtractDir,
		},
		Vendor: Vendor{
			ProToolsRemoveSampleAccurateEdit: true,
			ProToolsReplaceClipFades:         true,
			AvidFadeCurveOverride:            true,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
		Export: Export{
			CompressionLevel: defaultCompressionLevel,
		},
	}
}
