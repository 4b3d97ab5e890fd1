package logging

import (
	"context"
	"log/slog"
)

// minLevelHandler drops records below floor before they reach next. --quiet
// wraps the console logger in one.
type minLevelHandler struct {
	next  slog.Handler
	floor slog.Level
}

func (h minLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.floor && h.next.Enabled(ctx, level)
}

func (h minLevelHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level < h.floor {
		return nil
	}
	return h.next.Handle(ctx, record)
}

func (h minLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return minLevelHandler{next: h.next.WithAttrs(attrs), floor: h.floor}
}

func (h minLevelHandler) WithGroup(name string) slog.Handler {
	return minLevelHandler{next: h.next.WithGroup(name), floor: h.floor}
}

// WithLevelOverride returns a logger that drops records below level and
// keeps the attributes already attached to logger. Applying it twice
// replaces the earlier floor instead of stacking.
func WithLevelOverride(logger *slog.Logger, level slog.Level) *slog.Logger {
	if logger == nil {
		return slog.New(NoopHandler{})
	}
	next := logger.Handler()
	if prev, ok := next.(minLevelHandler); ok {
		next = prev.next
	}
	return slog.New(minLevelHandler{next: next, floor: level})
}
