package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
)

// zstdExt is appended to compressed exports that lack it.
const zstdExt = ".zst"

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	return encodeJSON(cmd.OutOrStdout(), v)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exportJSON writes v to path, zstd compressed at level when compress is
// set, and returns the written path.
func exportJSON(path string, v any, compress bool, level string) (string, error) {
	if compress && filepath.Ext(path) != zstdExt {
		path += zstdExt
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if !compress {
		if err := encodeJSON(file, v); err != nil {
			return "", fmt.Errorf("encode %s: %w", path, err)
		}
		return path, file.Close()
	}

	ok, encLevel := zstd.EncoderLevelFromString(level)
	if !ok {
		return "", fmt.Errorf("compression level %q is not supported", level)
	}
	zw, err := zstd.NewWriter(file, zstd.WithEncoderLevel(encLevel))
	if err != nil {
		return "", fmt.Errorf("create zstd writer: %w", err)
	}
	if err := encodeJSON(zw, v); err != nil {
		zw.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("flush %s: %w", path, err)
	}
	return path, file.Close()
}
