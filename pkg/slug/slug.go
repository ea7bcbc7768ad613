package slug

import (
	"strings"
	"unicode"
)

// Make converts a display title into a URL-safe path segment.
// The result contains only lowercase ASCII letters, digits and single
// hyphens, with no leading or trailing hyphen. Applying Make to its own
// output returns the same string.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	out := strings.Join(strings.Fields(b.String()), "-")
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}
