// Package config loads, normalizes, and validates aafkit configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the AAFKIT_MEDIA_LOCATION
// environment fallback for essence search locations. The Config type
// centralizes every knob the CLI needs: where logs and the index live, how
// external media is found, and which vendor-specific timeline clean-ups run.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
