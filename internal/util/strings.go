package util

import "strings"

// Dequote trims surrounding whitespace and strips matching pairs of
// leading/trailing quote characters (single, double or backtick) until
// neither remains. User supplied text is de-quoted before being spliced
// into generated shell or YAML so already-quoted values do not end up
// double-quoted.
//
// Trimming and stripping repeat to a fixpoint, so Dequote is idempotent:
// the result never starts with whitespace or a strippable quote pair.
func Dequote(s string) string {
	for {
		s = strings.TrimSpace(s)
		if len(s) < 2 || s[0] != s[len(s)-1] {
			return s
		}
		switch s[0] {
		case '\'', '"', '`':
			s = s[1 : len(s)-1]
		default:
			return s
		}
	}
}

// FirstNonEmpty returns the first non-empty string of its arguments.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
