package essence

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound reports an external essence that no candidate path matched.
var ErrNotFound = errors.New("essence file not found")

// Locate resolves the URL recorded by a NetworkLocator to a readable local
// file. Candidates are tried in order: each search location joined with the
// file name, then with "<parent>/<file>", the raw URL, the decoded URL path,
// and finally the directory of the AAF file joined with the name and with
// "<parent>/<file>".
func Locate(rawURL string, searchLocations []string, aafPath string) (string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", fmt.Errorf("locate essence: empty url")
	}
	decoded := uriPath(rawURL)
	name, relative, ok := splitTail(decoded)
	if !ok {
		return "", fmt.Errorf("locate essence: no file name in %q", rawURL)
	}

	candidates := make([]string, 0, 2*len(searchLocations)+4)
	for _, loc := range searchLocations {
		if loc = strings.TrimSpace(loc); loc == "" {
			continue
		}
		candidates = append(candidates, filepath.Join(loc, name))
		if relative != "" {
			candidates = append(candidates, filepath.Join(loc, filepath.FromSlash(relative)))
		}
	}
	candidates = append(candidates, rawURL, decoded)
	if aafPath != "" {
		dir := filepath.Dir(aafPath)
		candidates = append(candidates, filepath.Join(dir, name))
		if relative != "" {
			candidates = append(candidates, filepath.Join(dir, filepath.FromSlash(relative)))
		}
	}

	for _, candidate := range candidates {
		if !regularFile(candidate) {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			return "", fmt.Errorf("locate essence: %w", err)
		}
		return abs, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, rawURL)
}

// uriPath returns the percent-decoded path of a file URL, or the input with
// backslashes normalised when it is a bare path.
func uriPath(raw string) string {
	raw = strings.ReplaceAll(raw, `\`, "/")
	u, err := url.Parse(raw)
	if err == nil && u.Path != "" && (u.Scheme == "file" || u.Scheme == "" || len(u.Scheme) > 1) {
		return u.Path
	}
	if unescaped, err := url.PathUnescape(raw); err == nil {
		return unescaped
	}
	return raw
}

// splitTail returns the last path element and the last two joined by a
// slash.
func splitTail(p string) (name, relative string, ok bool) {
	p = strings.TrimRight(p, "/")
	idx := strings.LastIndex(p, "/")
	name = p[idx+1:]
	if name == "" {
		return "", "", false
	}
	if idx <= 0 {
		return name, "", true
	}
	parent := p[:idx]
	if pidx := strings.LastIndex(parent, "/"); pidx >= 0 {
		parent = parent[pidx+1:]
	}
	if parent == "" || strings.HasSuffix(parent, ":") {
		return name, "", true
	}
	return name, parent + "/" + name, true
}

func regularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
