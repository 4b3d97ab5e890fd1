package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"aafkit/internal/index"
)

func TestIndexAddListSearchRemove(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "index", "add", env.projectPath)
	if err != nil {
		t.Fatalf("index add: %v", err)
	}
	requireContains(t, out, `"Reel 1", 1 track(s), 2 clip(s)`)

	out, _, err = runCLI(t, env, "index", "list", "--json")
	if err != nil {
		t.Fatalf("index list: %v", err)
	}
	var files []index.FileEntry
	if err := json.Unmarshal([]byte(out), &files); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(files) != 1 || files[0].Path != env.projectPath || files[0].Clips != 2 || files[0].Essences != 1 {
		t.Fatalf("unexpected listing %+v", files)
	}

	out, _, err = runCLI(t, env, "index", "search", "inter")
	if err != nil {
		t.Fatalf("index search: %v", err)
	}
	requireContains(t, out, "reel1.aaf")
	requireContains(t, out, "Audio 1")

	out, _, err = runCLI(t, env, "index", "search", "score")
	if err != nil {
		t.Fatalf("index search: %v", err)
	}
	requireContains(t, out, `No clips match "score"`)

	out, _, err = runCLI(t, env, "index", "remove", env.projectPath)
	if err != nil {
		t.Fatalf("index remove: %v", err)
	}
	requireContains(t, out, "Removed")
	if _, _, err := runCLI(t, env, "index", "remove", env.projectPath); err == nil {
		t.Fatal("expected removing an unindexed file to fail")
	}
}

func TestIndexAddReportsFailures(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "index", "add", env.projectPath, filepath.Join(env.baseDir, "missing.aaf"))
	if err == nil {
		t.Fatal("expected an error for the missing file")
	}
	requireContains(t, err.Error(), "1 of 2")
	requireContains(t, out, "Indexed "+env.projectPath)
}
