package index_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"

	"aafkit/internal/index"
	"aafkit/internal/testsupport"
)

func sampleRecord(path string) index.RunRecord {
	return index.RunRecord{
		RunID:   "run-1",
		Path:    path,
		Product: "Pro Tools",
		Vendor:  "protools",
		Composition: index.CompositionRecord{
			Name:       "Reel 1",
			EditRate:   "48000/1",
			Length:     96000,
			SampleRate: 48000,
			SampleSize: 24,
		},
		Tracks: []index.TrackRecord{
			{
				Kind:   "audio",
				Number: 1,
				Name:   "Dialog",
				Format: "mono",
				Clips: []index.ClipRecord{
					{Position: 0, Length: 48000, Name: "Interview Take 3", EssenceNames: []string{"Interview_Take_3"}},
					{Position: 48000, Length: 48000, Name: "Room Tone", EssenceNames: []string{"Room_Tone"}, Mute: true},
				},
			},
			{
				Kind:   "audio",
				Number: 2,
				Format: "stereo",
				Clips: []index.ClipRecord{
					{Position: 0, Length: 96000, Name: "Score", EssenceNames: []string{"Score.L", "Score.R"}},
				},
			},
		},
		Essences: []index.EssenceRecord{
			{Kind: "audio", Name: "Interview Take 3", UniqueName: "Interview_Take_3", Type: "wave", Embedded: true},
			{Kind: "audio", Name: "Room Tone", UniqueName: "Room_Tone", Type: "pcm", Path: "/media/room.wav"},
		},
	}
}

func TestRecordAndListFiles(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenIndex(t, cfg)
	ctx := context.Background()

	if err := store.Record(ctx, sampleRecord("/projects/reel1.aaf")); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	files, err := store.Files(ctx)
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	got := files[0]
	if got.Path != "/projects/reel1.aaf" || got.Composition != "Reel 1" || got.Vendor != "protools" {
		t.Fatalf("unexpected entry %+v", got)
	}
	if got.Tracks != 2 || got.Clips != 3 || got.Essences != 2 {
		t.Fatalf("unexpected counts tracks=%d clips=%d essences=%d", got.Tracks, got.Clips, got.Essences)
	}
	if got.IndexedAt.IsZero() {
		t.Fatal("expected indexed time to be set")
	}
}

func TestRecordReplacesPreviousRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenIndex(t, cfg)
	ctx := context.Background()

	rec := sampleRecord("/projects/reel1.aaf")
	if err := store.Record(ctx, rec); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	rec.RunID = "run-2"
	rec.Tracks = rec.Tracks[:1]
	rec.IndexedAt = time.Now().Add(time.Minute)
	if err := store.Record(ctx, rec); err != nil {
		t.Fatalf("second Record failed: %v", err)
	}

	files, err := store.Files(ctx)
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}
	if len(files) != 1 || files[0].RunID != "run-2" || files[0].Tracks != 1 {
		t.Fatalf("expected the second run to replace the first, got %+v", files)
	}

	hits, err := store.Search(ctx, "score")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("clips of the replaced run must be gone, got %+v", hits)
	}
}

func TestSearchMatchesTokenPrefixes(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenIndex(t, cfg)
	ctx := context.Background()

	if err := store.Record(ctx, sampleRecord("/projects/reel1.aaf")); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	tests := []struct {
		term string
		want []string
	}{
		{"interview", []string{"Interview Take 3"}},
		{"TAKE 3", []string{"Interview Take 3"}},
		{"tone", []string{"Room Tone"}},
		{"sco", []string{"Score"}},
		{"view", nil},
		{"room take", nil},
		{"  ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			hits, err := store.Search(ctx, tt.term)
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if len(hits) != len(tt.want) {
				t.Fatalf("expected %d hits, got %+v", len(tt.want), hits)
			}
			for i, hit := range hits {
				if hit.ClipName != tt.want[i] {
					t.Errorf("hit %d: got %q want %q", i, hit.ClipName, tt.want[i])
				}
			}
		})
	}

	hits, err := store.Search(ctx, "score")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(hits) != 1 || hits[0].TrackNumber != 2 || len(hits[0].EssenceNames) != 2 || hits[0].EssenceNames[1] != "Score.R" {
		t.Fatalf("unexpected hit %+v", hits)
	}
}

func TestRemove(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenIndex(t, cfg)
	ctx := context.Background()

	if err := store.Record(ctx, sampleRecord("/projects/reel1.aaf")); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	removed, err := store.Remove(ctx, "/projects/reel1.aaf")
	if err != nil || !removed {
		t.Fatalf("expected removal, got %v %v", removed, err)
	}
	removed, err = store.Remove(ctx, "/projects/reel1.aaf")
	if err != nil || removed {
		t.Fatalf("expected nothing left to remove, got %v %v", removed, err)
	}
	hits, err := store.Search(ctx, "interview")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("expected cascade delete of clips, got %+v", hits)
	}
}

func TestRecordRequiresPath(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenIndex(t, cfg)

	if err := store.Record(context.Background(), index.RunRecord{}); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestRecordWaitsForLock(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenIndex(t, cfg)

	other := flock.New(store.Path() + ".lock")
	ok, err := other.TryLock()
	if err != nil || !ok {
		t.Fatalf("lock from second handle: %v %v", ok, err)
	}
	defer other.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	err = store.Record(ctx, sampleRecord("/projects/reel1.aaf"))
	if err == nil {
		t.Fatal("expected Record to give up while the lock is held")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "index.db")
	store, err := index.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Record(context.Background(), sampleRecord("/projects/reel1.aaf")); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := index.Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	files, err := reopened.Files(context.Background())
	if err != nil || len(files) != 1 {
		t.Fatalf("expected stored file after reopen, got %v %v", files, err)
	}
}
