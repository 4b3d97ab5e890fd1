package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
)

type timelineJSON struct {
	Composition string `json:"composition"`
	Vendor      string `json:"vendor"`
	Length      int64  `json:"length"`
	AudioLength int64  `json:"audio_length"`
	AudioTracks []struct {
		Number int    `json:"number"`
		Name   string `json:"name"`
		Items  []struct {
			Clip *struct {
				Position      int64 `json:"position"`
				Length        int64 `json:"length"`
				EssenceOffset int64 `json:"essence_offset"`
			} `json:"clip"`
		} `json:"items"`
	} `json:"audio_tracks"`
	AudioEssences []struct {
		UniqueName string `json:"unique_name"`
		Embedded   bool   `json:"embedded"`
	} `json:"audio_essences"`
}

func checkTimeline(t *testing.T, got timelineJSON) {
	t.Helper()
	if got.Composition != "Reel 1" || got.Vendor != "Pro Tools" {
		t.Fatalf("unexpected identity %q %q", got.Composition, got.Vendor)
	}
	if got.AudioLength != 96000 || got.Length != 50 {
		t.Fatalf("lengths: audio %d composition %d", got.AudioLength, got.Length)
	}
	if len(got.AudioTracks) != 1 || got.AudioTracks[0].Name != "DIA 1" {
		t.Fatalf("unexpected tracks %+v", got.AudioTracks)
	}
	items := got.AudioTracks[0].Items
	if len(items) != 2 || items[0].Clip == nil || items[1].Clip == nil {
		t.Fatalf("expected two clips, got %+v", items)
	}
	if second := items[1].Clip; second.Position != 72000 || second.Length != 24000 || second.EssenceOffset != 48000 {
		t.Fatalf("unexpected second clip %+v", second)
	}
	if len(got.AudioEssences) != 1 || got.AudioEssences[0].UniqueName != "Interview" || !got.AudioEssences[0].Embedded {
		t.Fatalf("unexpected essences %+v", got.AudioEssences)
	}
}

func TestTimelineCommandTable(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "timeline", env.projectPath)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	for _, want := range []string{"Reel 1", "01:00:00:00", "01:00:02:00", "DIA 1", "Interview", "72000", "1 audio, 0 video"} {
		requireContains(t, out, want)
	}
}

func TestTimelineCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "timeline", "--json", env.projectPath)
	if err != nil {
		t.Fatalf("timeline --json: %v", err)
	}
	var got timelineJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	checkTimeline(t, got)
}

func TestTimelineCommandCompressedExport(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(t.TempDir(), "reel1.json")

	out, _, err := runCLI(t, env, "timeline", "--output", target, "--compress", env.projectPath)
	if err != nil {
		t.Fatalf("timeline --output --compress: %v", err)
	}
	requireContains(t, out, target+".zst")

	file, err := os.Open(target + ".zst")
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer file.Close()
	zr, err := zstd.NewReader(file)
	if err != nil {
		t.Fatalf("zstd reader: %v", err)
	}
	defer zr.Close()
	var got timelineJSON
	if err := json.NewDecoder(zr).Decode(&got); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	checkTimeline(t, got)
}

func TestTimelineCommandRejectsCompressWithoutOutput(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "timeline", "--compress", env.projectPath)
	if err == nil {
		t.Fatal("expected --compress without --output to fail")
	}
	requireContains(t, err.Error(), "--output")
}

func TestEssencesCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "essences", env.projectPath)
	if err != nil {
		t.Fatalf("essences: %v", err)
	}
	for _, want := range []string{"Interview", "pcm", "48000", "96000", "188 KiB"} {
		requireContains(t, out, want)
	}
}

func TestFormatTimecode(t *testing.T) {
	tests := []struct {
		frames int64
		fps    uint16
		drop   bool
		want   string
	}{
		{90000, 25, false, "01:00:00:00"},
		{90049, 25, false, "01:00:01:24"},
		{1800, 30, true, "00:01:00;02"},
		{17982, 30, true, "00:10:00;00"},
		{42, 0, false, "42"},
	}
	for _, tt := range tests {
		if got := formatTimecode(tt.frames, tt.fps, tt.drop); got != tt.want {
			t.Errorf("formatTimecode(%d, %d, %v) = %q, want %q", tt.frames, tt.fps, tt.drop, got, tt.want)
		}
	}
}
