package aaferr

import (
	"log/slog"
	"sync"
)

// Diagnostic is one dropped or degraded branch of a parse or interpretation.
type Diagnostic struct {
	Level   slog.Level `json:"level"`
	Kind    Kind       `json:"kind"`
	Path    string     `json:"path,omitempty"`
	Message string     `json:"message"`
}

// Diagnostics collects the session-level report. The zero value is ready to
// use.
type Diagnostics struct {
	mu      sync.Mutex
	records []Diagnostic
}

// Add appends one record.
func (d *Diagnostics) Add(rec Diagnostic) {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.records = append(d.records, rec)
	d.mu.Unlock()
}

// Record classifies err and appends it.
func (d *Diagnostics) Record(level slog.Level, path string, err error) {
	if err == nil {
		return
	}
	d.Add(Diagnostic{Level: level, Kind: Classify(err), Path: path, Message: err.Error()})
}

// Report returns a copy of the records in emission order.
func (d *Diagnostics) Report() []Diagnostic {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Diagnostic, len(d.records))
	copy(out, d.records)
	return out
}

// Counts tallies records per kind.
func (d *Diagnostics) Counts() map[Kind]int {
	counts := make(map[Kind]int)
	for _, rec := range d.Report() {
		counts[rec.Kind]++
	}
	return counts
}

func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.records)
}
