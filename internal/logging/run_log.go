package logging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// RunLogExt is the extension of per-run JSON logs.
const RunLogExt = ".jsonl"

// runIDHandler stamps run_id on every record that does not already carry
// one.
type runIDHandler struct {
	base    slog.Handler
	runID   string
	present bool
}

func newRunIDHandler(base slog.Handler, runID string) slog.Handler {
	if base == nil {
		return NoopHandler{}
	}
	return &runIDHandler{base: base, runID: runID}
}

func (h *runIDHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *runIDHandler) Handle(ctx context.Context, record slog.Record) error {
	if !h.present && h.runID != "" {
		found := false
		record.Attrs(func(attr slog.Attr) bool {
			found = attr.Key == FieldRunID
			return !found
		})
		if !found {
			record.AddAttrs(slog.String(FieldRunID, h.runID))
		}
	}
	return h.base.Handle(ctx, record)
}

func (h *runIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &runIDHandler{
		base:    h.base.WithAttrs(attrs),
		runID:   h.runID,
		present: h.present || HasAttrKey(attrs, FieldRunID),
	}
}

func (h *runIDHandler) WithGroup(name string) slog.Handler {
	return &runIDHandler{
		base:    h.base.WithGroup(name),
		runID:   h.runID,
		present: h.present,
	}
}

// RunLog is the JSON log of a single aafkit invocation, written to
// <dir>/<run id>.jsonl.
type RunLog struct {
	Path    string
	file    *os.File
	handler slog.Handler
}

// OpenRunLog creates the run log for runID. Records below level are
// dropped.
func OpenRunLog(dir, runID string, level slog.Level) (*RunLog, error) {
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return nil, errors.New("run log requires a run id")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create run log directory: %w", err)
	}
	path := filepath.Join(dir, runID+RunLogExt)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open run log: %w", err)
	}
	return &RunLog{
		Path:    path,
		file:    file,
		handler: newRunIDHandler(newJSONHandler(file, level, false), runID),
	}, nil
}

// Handler returns the slog handler writing to the run log.
func (r *RunLog) Handler() slog.Handler {
	if r == nil {
		return NoopHandler{}
	}
	return r.handler
}

// Close flushes and closes the run log file.
func (r *RunLog) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
