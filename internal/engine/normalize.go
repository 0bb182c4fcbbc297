package engine

import (
	"regexp"
	"strings"
)

var (
	// Everything that is not a word character, whitespace, a Cyrillic
	// letter or a hyphen becomes a space.
	junkRe   = regexp.MustCompile(`[^\w\sа-яё-]`)
	spacesRe = regexp.MustCompile(`\s{2,}`)
)

// Normalize lowercases text and strips punctuation for greeting and keyword
// matching. Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = junkRe.ReplaceAllString(text, " ")
	text = spacesRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
