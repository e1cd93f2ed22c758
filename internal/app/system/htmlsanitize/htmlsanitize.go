// Package htmlsanitize strips markup from caller-supplied strings before
// they are written to the store.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// PlainText removes every HTML element from s (script and style bodies
// included) and returns the remaining text unescaped and trimmed, so plain
// values such as "active" or "a & b" come back unchanged.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// PlainTextOrTrimmed is PlainText, except that a non-blank value made only
// of markup (for example "<b></b>") is returned trimmed instead of empty.
func PlainTextOrTrimmed(s string) string {
	if out := PlainText(s); out != "" {
		return out
	}
	return strings.TrimSpace(s)
}
