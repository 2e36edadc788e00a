// Package assets decides which files under the site's assets directory may
// be served or exported, using doublestar include globs.
package assets

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Allowed reports whether relPath may be served or exported. relPath is
// relative to the assets directory; it must stay inside it and match at
// least one include glob. An empty include list allows nothing.
func Allowed(relPath string, include []string) bool {
	normalized, ok := Clean(relPath)
	if !ok {
		return false
	}
	return matchesAny(normalized, include)
}

// Clean normalises relPath to a slash-separated path without a leading
// slash. It returns false for paths that escape the root or name a
// hidden file or directory.
func Clean(relPath string) (string, bool) {
	p := path.Clean("/" + filepath.ToSlash(relPath))
	p = strings.TrimPrefix(p, "/")
	if p == "" || p == "." {
		return "", false
	}
	for _, part := range strings.Split(p, "/") {
		if part == ".." || strings.HasPrefix(part, ".") {
			return "", false
		}
	}
	return p, true
}

// ValidatePatterns returns the first include glob doublestar cannot parse.
func ValidatePatterns(include []string) (string, bool) {
	for _, pattern := range include {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return pattern, false
		}
	}
	return "", true
}

// matchesAny checks if relPath matches any of the given glob patterns.
// Matching is against the whole relative path, so "images/**" never admits
// files under static/.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
			return true
		}
	}
	return false
}
