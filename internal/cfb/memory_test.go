package cfb

import (
	"io"
	"testing"

	"aafkit/internal/aaf/types"
)

func TestMemoryTreeLookup(t *testing.T) {
	mem := NewMemory("fixture.aaf", types.ClassRoot)
	header := mem.AddStorage(mem.Root(), "Header-2", types.ClassHeader)
	props := mem.AddStream(header, "properties", []byte{0x4c, 0x00, 0x00, 0x00})

	got, ok := mem.Root().Lookup("/Header-2/properties")
	if !ok || got != props {
		t.Fatalf("expected lookup to find properties stream, got %v", got)
	}
	if props.Path() != "/Header-2/properties" {
		t.Fatalf("unexpected path %q", props.Path())
	}
	if _, ok := header.Child("missing"); ok {
		t.Fatal("expected missing child lookup to fail")
	}
	data, err := mem.Stream(props)
	if err != nil || len(data) != 4 {
		t.Fatalf("Stream = %v, %v", data, err)
	}
	if _, err := mem.Stream(header); err == nil {
		t.Fatal("expected error reading a storage as a stream")
	}
	sec, err := mem.Section(props)
	if err != nil {
		t.Fatalf("Section: %v", err)
	}
	buf, _ := io.ReadAll(io.NewSectionReader(sec, 1, 3))
	if len(buf) != 3 {
		t.Fatalf("expected 3 bytes, got %d", len(buf))
	}
}

func TestParseCLSID(t *testing.T) {
	got := parseCLSID("{0D010101-0101-2F00-060E-2B3402060101}")
	if got != types.ClassHeader {
		t.Fatalf("parseCLSID = %s, want %s", got, types.ClassHeader)
	}
	if !parseCLSID("garbage").IsZero() {
		t.Fatal("expected zero AUID for malformed CLSID")
	}
}
