package practice

import "strings"

// Normalize prepares an answer for comparison: leading/trailing
// whitespace is trimmed and the string is lower-cased. Casing is
// ordinal, not locale-aware.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Grade reports whether a submitted answer matches the expected one.
// Exact normalized equality only — no partial credit, no fuzzy
// matching, no synonym resolution.
func Grade(submitted, expected string) bool {
	return Normalize(submitted) == Normalize(expected)
}
