package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// prettyHandler writes one header line per record followed by indented
// fields. At info level it shows a curated subset and hides fields that
// repeat within a run; at debug level it prints every field verbatim.
type prettyHandler struct {
	mu        *sync.Mutex
	writer    io.Writer
	level     *slog.LevelVar
	attrs     []slog.Attr
	groups    []string
	addSource bool
	infoCache map[string]map[string]string
}

func newPrettyHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	return &prettyHandler{
		mu:        new(sync.Mutex),
		writer:    w,
		level:     lvl,
		addSource: addSource,
		infoCache: make(map[string]map[string]string),
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, record slog.Record) error {
	if record.Level < h.level.Level() {
		return nil
	}

	timestamp := record.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	kvs := make([]kv, 0, record.NumAttrs()+len(h.attrs))
	flattenAttrs(&kvs, h.groups, h.attrs)
	record.Attrs(func(attr slog.Attr) bool {
		flattenAttr(&kvs, h.groups, attr)
		return true
	})

	allAttrs := make([]kv, len(kvs))
	copy(allAttrs, kvs)

	var component, file, runID string
	filtered := make([]kv, 0, len(kvs))
	for _, kv := range kvs {
		switch kv.key {
		case FieldComponent:
			if component == "" {
				component = attrString(kv.value)
			}
			continue
		case FieldFile:
			if file == "" {
				file = attrString(kv.value)
			}
		case FieldRunID:
			if runID == "" {
				runID = attrString(kv.value)
			}
		}
		filtered = append(filtered, kv)
	}
	head := logHeader{ts: timestamp, level: record.Level, component: component, file: file, runID: runID}

	filtered = dedupeKVsByKey(filtered)
	allAttrs = dedupeKVsByKey(allAttrs)

	message := strings.TrimSpace(record.Message)
	if message == "" {
		message = "(no message)"
	}

	var buf bytes.Buffer
	buf.Grow(256 + len(filtered)*32)

	h.mu.Lock()
	defer h.mu.Unlock()
	if record.Level < slog.LevelInfo {
		h.writeDebug(&buf, head, message, record.Source(), allAttrs)
	} else {
		h.writeInfo(&buf, head, message, record.Source(), filtered)
	}
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *prettyHandler) writeInfo(buf *bytes.Buffer, head logHeader, message string, src *slog.Source, attrs []kv) {
	writeLogHeader(buf, head, message, h.addSource, src)
	fields, hidden := selectInfoFields(attrs, infoAttrLimit, false)
	summaryKey := infoSummaryKey(head.component, head.runID, attrs)
	fields, hidden = h.filterRepeatedInfo(summaryKey, fields, hidden, head.level)
	if len(fields) == 0 && hidden == 0 {
		buf.WriteByte('\n')
		return
	}
	buf.WriteByte('\n')
	for _, field := range fields {
		fmt.Fprintf(buf, "    - %s: %s\n", field.label, field.value)
	}
	if hidden > 0 {
		fmt.Fprintf(buf, "    + %d more %s hidden\n", hidden, plural(hidden, "field", "fields"))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func (h *prettyHandler) writeDebug(buf *bytes.Buffer, head logHeader, message string, src *slog.Source, attrs []kv) {
	writeLogHeader(buf, head, message, h.addSource, src)
	if len(attrs) == 0 {
		buf.WriteByte('\n')
		return
	}
	buf.WriteByte('\n')
	for _, kv := range attrs {
		if kv.key == "" {
			continue
		}
		fmt.Fprintf(buf, "    %s: %s\n", kv.key, formatValue(kv.value))
	}
}

const logTimestampLayout = "2006-01-02 15:04:05"

type logHeader struct {
	ts        time.Time
	level     slog.Level
	component string
	file      string
	runID     string
}

func writeLogHeader(buf *bytes.Buffer, head logHeader, message string, addSource bool, src *slog.Source) {
	buf.WriteString(formatTimestamp(head.ts))
	buf.WriteByte(' ')
	buf.WriteString(levelLabel(head.level))
	if head.component != "" {
		fmt.Fprintf(buf, " [%s]", head.component)
	}
	if subject := composeSubject(head.file, head.runID); subject != "" {
		buf.WriteByte(' ')
		buf.WriteString(subject)
	}
	if message != "" {
		buf.WriteString(" – ")
		buf.WriteString(message)
	}
	if addSource && src != nil {
		fmt.Fprintf(buf, " [%s:%d]", filepath.Base(src.File), src.Line)
	}
}

// composeSubject names the file base name and the first eight characters
// of the run id, e.g. "reel1.aaf · run 1f0c2a9e".
func composeSubject(file, runID string) string {
	file = strings.TrimSpace(file)
	runID = strings.TrimSpace(runID)
	parts := make([]string, 0, 2)
	if file != "" {
		parts = append(parts, filepath.Base(file))
	}
	if runID != "" {
		if len(runID) > 8 {
			runID = runID[:8]
		}
		parts = append(parts, "run "+runID)
	}
	return strings.Join(parts, " · ")
}

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.In(time.Local).Format(logTimestampLayout)
}

// filterRepeatedInfo drops info fields whose value has not changed since
// the last record with the same summary key. Warnings and errors always
// show every field but still update the cache.
func (h *prettyHandler) filterRepeatedInfo(key string, fields []infoField, hidden int, level slog.Level) ([]infoField, int) {
	if key == "" || len(fields) == 0 {
		return fields, hidden
	}
	seen := h.infoCache[key]
	if seen == nil {
		seen = make(map[string]string)
		h.infoCache[key] = seen
	}
	kept := fields[:0:0]
	for _, field := range fields {
		prev, ok := seen[field.label]
		seen[field.label] = field.value
		if level <= slog.LevelInfo && ok && prev == field.value {
			continue
		}
		kept = append(kept, field)
	}
	return kept, hidden
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	clone.attrs = append(clone.attrs, attrs...)
	return clone
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *prettyHandler) clone() *prettyHandler {
	clone := *h
	clone.attrs = slices.Clone(h.attrs)
	clone.groups = slices.Clone(h.groups)
	return &clone
}

type kv struct {
	key   string
	value slog.Value
}

func dedupeKVsByKey(attrs []kv) []kv {
	if len(attrs) < 2 {
		return attrs
	}
	positions := make(map[string]int, len(attrs))
	deduped := make([]kv, 0, len(attrs))
	for _, attr := range attrs {
		if attr.key == "" {
			continue
		}
		if pos, ok := positions[attr.key]; ok {
			deduped[pos].value = attr.value
			continue
		}
		positions[attr.key] = len(deduped)
		deduped = append(deduped, attr)
	}
	return deduped
}

func flattenAttrs(dst *[]kv, prefix []string, attrs []slog.Attr) {
	for _, attr := range attrs {
		flattenAttr(dst, prefix, attr)
	}
}

// flattenAttr turns groups into dotted keys, e.g. walk.class.
func flattenAttr(dst *[]kv, prefix []string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	value := attr.Value.Resolve()
	path := prefix
	if attr.Key != "" {
		path = append(slices.Clip(prefix), attr.Key)
	}
	if value.Kind() == slog.KindGroup {
		flattenAttrs(dst, path, value.Group())
		return
	}
	*dst = append(*dst, kv{key: strings.Join(path, "."), value: value})
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
