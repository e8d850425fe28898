// Package slugify derives URL-safe identifiers from human-readable names.
package slugify

import (
	"regexp"
	"strings"
)

var (
	// invalidChars matches everything outside [a-z0-9-]
	invalidChars    = regexp.MustCompile(`[^a-z0-9-]+`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Make converts a name to its slug: lowercase, spaces become hyphens, and
// any character outside [a-z0-9-] is stripped. Runs of hyphens collapse to
// one and leading/trailing hyphens are trimmed.
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = invalidChars.ReplaceAllString(s, "")
	s = multipleHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValid reports whether s is already in slug form.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}
	return s[0] != '-' && s[len(s)-1] != '-' && !strings.Contains(s, "--")
}
