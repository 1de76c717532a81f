package util

import (
	"strings"
	"unicode/utf8"
)

// NormalizeContent trims surrounding whitespace and leaves the rest of the
// text exactly as written. Clients escape it on render.
func NormalizeContent(content string) string {
	return strings.TrimSpace(content)
}

// RuneLen counts characters, not bytes.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
