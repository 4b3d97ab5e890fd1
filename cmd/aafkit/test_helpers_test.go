package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"aafkit/internal/cfb"
	"aafkit/internal/config"
	"aafkit/internal/testsupport"
)

type cliTestEnv struct {
	cfg         *config.Config
	configPath  string
	projectPath string
	baseDir     string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv(config.MediaLocationEnv, "")

	cfg := testsupport.NewConfig(t)
	cfg.Logging.Format = "json"
	configPath := filepath.Join(base, "aafkit.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:         cfg,
		configPath:  configPath,
		projectPath: filepath.Join(base, "projects", "reel1.aaf"),
		baseDir:     base,
	}
}

// opener serves the in-memory project for env.projectPath.
func (env *cliTestEnv) opener(path string) (cfb.Container, error) {
	if path != env.projectPath {
		return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
	}
	return testsupport.NewProject(), nil
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := buildRootCommand(env.opener)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath, "--quiet"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	testsupport.WriteFile(t, path, content)
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
