package splitter

import (
	"strings"
)

// maxNameLen bounds sanitized filename fragments, conservative for Windows paths.
const maxNameLen = 100

// fallbackName is returned when sanitization leaves nothing usable.
const fallbackName = "unnamed"

// SanitizeTitle normalizes a chapter title into a filesystem-safe filename
// fragment. Each character forbidden on Windows is replaced with a single
// underscore (no collapsing of adjacent replacements), leading/trailing spaces
// and periods are stripped, and the result is truncated to 100 characters.
// The function is total and idempotent; an empty result becomes "unnamed".
func SanitizeTitle(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	s := strings.Trim(b.String(), " .")
	if runes := []rune(s); len(runes) > maxNameLen {
		s = string(runes[:maxNameLen])
		// Truncation can expose a trailing space or period again.
		s = strings.Trim(s, " .")
	}
	if s == "" {
		return fallbackName
	}
	return s
}
