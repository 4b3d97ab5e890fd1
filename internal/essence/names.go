package essence

import (
	"fmt"
	"strings"

	"aafkit/internal/textutil"
)

// Namer hands out export file names that are unique within one
// composition.
type Namer struct {
	// ForbidNonLatin replaces names with non-Latin letters by
	// "<Fallback>_<n>".
	ForbidNonLatin bool
	Fallback       string

	used     map[string]bool
	nonLatin int
}

// Name returns a sanitized, unused name derived from name. Duplicates get
// "_1", "_2" and so on.
func (n *Namer) Name(name string) string {
	if n.used == nil {
		n.used = make(map[string]bool)
	}
	base := textutil.SanitizeFileName(name)
	if base == "" {
		base = "unknown"
	}
	if n.ForbidNonLatin && textutil.HasNonLatin(base) {
		n.nonLatin++
		fallback := textutil.SanitizeFileName(n.Fallback)
		if fallback == "" || textutil.HasNonLatin(fallback) {
			fallback = "essence"
		}
		base = fmt.Sprintf("%s_%d", fallback, n.nonLatin)
	}
	out := base
	for i := 1; n.taken(out); i++ {
		out = fmt.Sprintf("%s_%d", base, i)
	}
	n.used[strings.ToLower(out)] = true
	return out
}

func (n *Namer) taken(name string) bool {
	return n.used[strings.ToLower(name)]
}
