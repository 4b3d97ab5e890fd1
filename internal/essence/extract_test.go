package essence

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"aafkit/internal/aaf/types"
	"aafkit/internal/cfb"
	"aafkit/internal/testsupport"
)

func embedded(t *testing.T, data []byte) (*cfb.Memory, *cfb.Node) {
	t.Helper()
	mem := cfb.NewMemory("fixture.aaf", types.ClassRoot)
	return mem, mem.AddStream(mem.Root(), "Data-2702", data)
}

func decodeFile(t *testing.T, path string) (*wav.Decoder, []int) {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	dec := wav.NewDecoder(bytes.NewReader(raw))
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return dec, buf.Data
}

func TestExtractEmbeddedWAVEIsPassthrough(t *testing.T) {
	data := testsupport.WAVE(1, 48000, 16, 32)
	mem, node := embedded(t, data)
	f, err := ParseBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path, err := ExtractEmbedded(mem, Source{Name: "Dialog", Node: node, Format: f}, dir)
	if err != nil {
		t.Fatalf("ExtractEmbedded: %v", err)
	}
	if path != filepath.Join(dir, "Dialog.wav") {
		t.Fatalf("unexpected path %s", path)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("expected the embedded WAVE to be copied unchanged")
	}
}

func TestExtractEmbeddedPCMIsWrapped(t *testing.T) {
	mem, node := embedded(t, testsupport.PCM(2, 16, 10))
	src := Source{
		Name:         "music.wav",
		Node:         node,
		Format:       Format{Type: TypePCM, Channels: 2, SampleRate: 48000, SampleSize: 16, SampleCount: 10},
		Originator:   "Fixture Editor 1.0",
		Description:  "music\nReel 1.aaf",
		CreationDate: "2024:03:14",
	}
	path, err := ExtractEmbedded(mem, src, t.TempDir())
	if err != nil {
		t.Fatalf("ExtractEmbedded: %v", err)
	}
	if filepath.Base(path) != "music.wav" {
		t.Fatalf("expected existing extension to be kept, got %s", path)
	}
	dec, samples := decodeFile(t, path)
	if dec.NumChans != 2 || dec.SampleRate != 48000 || dec.BitDepth != 16 {
		t.Fatalf("unexpected header: %d ch %d Hz %d bit", dec.NumChans, dec.SampleRate, dec.BitDepth)
	}
	if len(samples) != 20 || samples[0] != 0 || samples[19] != 19 {
		t.Fatalf("unexpected samples %v", samples)
	}
}

func TestExtractClipRange(t *testing.T) {
	data := testsupport.WAVE(2, 48000, 24, 100)
	mem, node := embedded(t, data)
	f, err := ParseBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	path, err := ExtractClip(mem, Source{Name: "stereo", Node: node, Format: f}, t.TempDir(), "1_1_stereo", 10, 5)
	if err != nil {
		t.Fatalf("ExtractClip: %v", err)
	}
	_, samples := decodeFile(t, path)
	if len(samples) != 10 {
		t.Fatalf("expected 5 stereo frames, got %d samples", len(samples))
	}
	if samples[0] != 20 || samples[9] != 29 {
		t.Fatalf("expected samples 20..29, got %v", samples)
	}
}

func TestExtractClipSwapsAIFC(t *testing.T) {
	data := testsupport.AIFC(1, 48000, 16, 16)
	mem, node := embedded(t, data)
	f, err := ParseBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	path, err := ExtractClip(mem, Source{Name: "mono", Node: node, Format: f}, t.TempDir(), "mono clip", 4, 4)
	if err != nil {
		t.Fatalf("ExtractClip: %v", err)
	}
	_, samples := decodeFile(t, path)
	want := []int{4, 5, 6, 7}
	for i := range want {
		if samples[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, samples)
		}
	}
}

func TestExtractClipRejectsOutOfRange(t *testing.T) {
	data := testsupport.WAVE(1, 48000, 16, 10)
	mem, node := embedded(t, data)
	f, _ := ParseBytes(data)
	if _, err := ExtractClip(mem, Source{Name: "x", Node: node, Format: f}, t.TempDir(), "x", 8, 5); err == nil {
		t.Fatal("expected out of range error")
	}
	if _, err := ExtractEmbedded(mem, Source{Name: "x"}, t.TempDir()); !errors.Is(err, ErrNotEmbedded) {
		t.Fatalf("expected ErrNotEmbedded, got %v", err)
	}
}
