package textutil

import "strings"

// Ternary returns a when cond holds and b otherwise.
func Ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

// FirstNonEmpty returns the first value that is not blank after trimming,
// or "" when every value is blank. Names in AAF files are often padded.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
