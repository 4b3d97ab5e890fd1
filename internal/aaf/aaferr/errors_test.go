package aaferr_test

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"aafkit/internal/aaf/aaferr"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("short read")
	err := aaferr.Wrap(aaferr.ErrMalformedStream, "property", "decode index", "/Header-2", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, aaferr.ErrMalformedStream) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"property", "decode index", "/Header-2"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want aaferr.Kind
	}{
		{aaferr.Missing("/Mob", "Slots"), aaferr.KindMissing},
		{aaferr.Unsupported("/Mob", "EssenceGroup"), aaferr.KindUnsupported},
		{aaferr.Wrap(aaferr.ErrSchema, "catalog", "lookup", "", nil), aaferr.KindSchema},
		{aaferr.Wrap(aaferr.ErrReferenceResolution, "resolver", "weak", "", nil), aaferr.KindReference},
		{errors.New("plain"), aaferr.KindOther},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := aaferr.Classify(tc.err); got != tc.want {
			t.Fatalf("Classify(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestDiagnosticsReportOrder(t *testing.T) {
	var diag aaferr.Diagnostics
	diag.Record(slog.LevelWarn, "/a", aaferr.Unsupported("/a", "EssenceGroup"))
	diag.Record(slog.LevelError, "/b", aaferr.Missing("/b", "Length"))
	diag.Record(slog.LevelError, "/c", nil)

	report := diag.Report()
	if len(report) != 2 {
		t.Fatalf("expected 2 records, got %d", len(report))
	}
	if report[0].Path != "/a" || report[1].Kind != aaferr.KindMissing {
		t.Fatalf("unexpected report %+v", report)
	}
	counts := diag.Counts()
	if counts[aaferr.KindUnsupported] != 1 || counts[aaferr.KindMissing] != 1 {
		t.Fatalf("unexpected counts %+v", counts)
	}
}
