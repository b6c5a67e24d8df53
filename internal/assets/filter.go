package assets

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are directory and file names never published.
var DefaultExcludes = []string{
	".git",
	".DS_Store",
	"node_modules",
	"Thumbs.db",
	".folio.yml",
	".env",
}

// Filter selects which files under the assets directory are published.
type Filter struct {
	Include []string // glob patterns; empty means everything
	Exclude []string // glob patterns applied after Include
}

// Allowed reports whether relPath passes the default excludes and the
// include/exclude globs. Paths leaving the root are never allowed.
func (f Filter) Allowed(relPath string) bool {
	normalized := filepath.ToSlash(filepath.Clean(relPath))
	normalized = strings.TrimPrefix(normalized, "/")
	if normalized == ".." || strings.HasPrefix(normalized, "../") {
		return false
	}
	for _, part := range strings.Split(normalized, "/") {
		if excludedName(part) {
			return false
		}
	}
	if !MatchesInclude(normalized, f.Include) {
		return false
	}
	return !MatchesExclude(normalized, f.Exclude)
}

func excludedName(name string) bool {
	for _, excl := range DefaultExcludes {
		if strings.EqualFold(name, excl) {
			return true
		}
	}
	return false
}

// MatchesInclude returns true if relPath matches any of the include
// patterns. If patterns is empty, everything is included.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// MatchesExclude returns true if relPath matches any of the exclude
// patterns. If patterns is empty, nothing is excluded.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny checks the full path and then the base name against each
// pattern, so "*.psd" matches at any depth.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
