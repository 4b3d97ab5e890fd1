package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"aafkit/internal/logging"
)

func TestInfoCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "info", env.projectPath)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{
		"== Identification ==",
		"Pro Tools",
		"EditProtocol",
		"little endian",
		"3 (1 composition, 1 master, 1 source)",
	} {
		requireContains(t, out, want)
	}
}

func TestInfoCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "info", "--json", env.projectPath)
	if err != nil {
		t.Fatalf("info --json: %v", err)
	}
	var info fileInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if info.Path != env.projectPath || info.Vendor != "Pro Tools" || !info.EditProtocol {
		t.Fatalf("unexpected info %+v", info)
	}
	if info.EssenceData != 1 || info.CompositionMobs != 1 || info.Classes == 0 {
		t.Fatalf("unexpected counts %+v", info)
	}
}

func TestInfoCommandMissingFile(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "info", filepath.Join(env.baseDir, "missing.aaf"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	requireContains(t, err.Error(), "missing.aaf")
}

func TestCommandsWriteRunLog(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env, "info", env.projectPath); err != nil {
		t.Fatalf("info: %v", err)
	}
	matches, err := filepath.Glob(filepath.Join(env.cfg.RunLogDir(), "*"+logging.RunLogExt))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one run log, got %v %v", matches, err)
	}
	content, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read run log: %v", err)
	}
	requireContains(t, string(content), `"event_type":"aaf_parsed"`)
	requireContains(t, string(content), `"run_id"`)
}

func TestTraceMetaLogsOperationParameters(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Logging.TraceMeta = true
	writeTestConfig(t, env.configPath, env.cfg)

	if _, _, err := runCLI(t, env, "info", env.projectPath); err != nil {
		t.Fatalf("info: %v", err)
	}
	matches, err := filepath.Glob(filepath.Join(env.cfg.RunLogDir(), "*"+logging.RunLogExt))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one run log, got %v %v", matches, err)
	}
	content, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read run log: %v", err)
	}
	requireContains(t, string(content), `"component":"dictionary"`)
	requireContains(t, string(content), `"operation":"MonoAudioGain","parameters":"Amplitude"`)
	requireContains(t, string(content), `"operation":"MonoAudioPan","parameters":"Pan"`)
}

func TestClassesCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "classes", env.projectPath)
	if err != nil {
		t.Fatalf("classes: %v", err)
	}
	requireContains(t, out, "CompositionMob")
	requireContains(t, out, "MetaDictionary defined 0")

	out, _, err = runCLI(t, env, "classes", "--meta-only", env.projectPath)
	if err != nil {
		t.Fatalf("classes --meta-only: %v", err)
	}
	requireContains(t, out, "No classes discovered")

	out, _, err = runCLI(t, env, "classes", "--json", env.projectPath)
	if err != nil {
		t.Fatalf("classes --json: %v", err)
	}
	var rows []classRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	found := false
	for _, r := range rows {
		if r.Name == "SourceClip" {
			found = true
			if !r.Concrete || r.Discovered || r.Parent != "SourceReference" {
				t.Fatalf("unexpected SourceClip row %+v", r)
			}
		}
	}
	if !found {
		t.Fatal("SourceClip missing from the catalog listing")
	}
}
