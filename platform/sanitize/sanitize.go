// Package sanitize provides text sanitization for server-provided strings
// that end up on a plain-text display.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// htmlTagRegex matches HTML tags
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
	// controlRegex matches terminal control characters except tab
	controlRegex = regexp.MustCompile("[\x00-\x08\x0b-\x1f\x7f]")
)

// StripHTML removes all HTML tags from a string, making it safe for text-only display.
func StripHTML(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = strings.ReplaceAll(result, "&lt;", "<")
	result = strings.ReplaceAll(result, "&gt;", ">")
	result = strings.ReplaceAll(result, "&amp;", "&")
	result = strings.ReplaceAll(result, "&quot;", "\"")
	result = strings.ReplaceAll(result, "&#39;", "'")
	// Re-strip after entity decode to catch encoded tags
	result = htmlTagRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

// Text prepares a string for a terminal: HTML is stripped, control
// characters (escape sequences, bells, newlines) are dropped.
func Text(s string) string {
	return controlRegex.ReplaceAllString(StripHTML(s), "")
}
