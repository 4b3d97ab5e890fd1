package logging

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
)

// maxBytesShown caps raw property payloads printed on the console.
const maxBytesShown = 16

// attrString renders a value without quoting, for headers built from
// component, file and run id.
func attrString(v slog.Value) string {
	v = v.Resolve()
	if v.Kind() == slog.KindAny {
		return anyString(v.Any())
	}
	if v.Kind() == slog.KindString {
		return v.String()
	}
	return formatValue(v)
}

// formatValue renders a value for a key=value field, quoting strings that
// would otherwise be ambiguous.
func formatValue(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return formatTimestamp(v.Time())
	case slog.KindAny:
		return quoteIfNeeded(anyString(v.Any()))
	default:
		return quoteIfNeeded(v.String())
	}
}

// anyString handles the non-scalar values the reader logs: errors, AUIDs and
// mob ids through Stringer, and raw property bytes as truncated hex.
func anyString(value any) string {
	switch val := value.(type) {
	case nil:
		return "<nil>"
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	case []byte:
		if len(val) > maxBytesShown {
			return hex.EncodeToString(val[:maxBytesShown]) + fmt.Sprintf("…(%d bytes)", len(val))
		}
		return hex.EncodeToString(val)
	default:
		return fmt.Sprint(val)
	}
}

func quoteIfNeeded(s string) string {
	if needsQuotes(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuotes(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' {
			return true
		}
	}
	return false
}
