// Package validate cleans user-entered text before it is stored.
package validate

import "strings"

// SanitizeText cleans free text (journal bodies, notes) for storage:
// trims whitespace, drops null bytes, and normalizes line endings.
func SanitizeText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\x00", "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// SanitizeName cleans a single-line name (dish names, payment methods):
// like SanitizeText, but newlines collapse to spaces.
func SanitizeName(s string) string {
	s = SanitizeText(s)
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.Join(strings.Fields(s), " ")
}
