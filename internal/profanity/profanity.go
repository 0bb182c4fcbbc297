// Package profanity flags messages containing words from a fixed lexicon.
package profanity

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`[А-Яа-яЁёA-Za-z-]+`)

type Filter struct {
	words map[string]struct{}
}

// LoadFile reads a line-delimited lexicon, one lowercase token per line.
// Blank lines are skipped. A missing or empty file yields a filter that
// never matches.
func LoadFile(path string) (*Filter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(nil), nil
		}
		return nil, fmt.Errorf("reading lexicon %s: %w", path, err)
	}

	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		if w := strings.TrimSpace(line); w != "" {
			words = append(words, w)
		}
	}
	return New(words), nil
}

func New(words []string) *Filter {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Filter{words: set}
}

// Contains reports whether any token of text is in the lexicon. Tokens are
// runs of Cyrillic/Latin letters and hyphens, compared lowercased.
func (f *Filter) Contains(text string) bool {
	if len(f.words) == 0 {
		return false
	}
	for _, tok := range wordRe.FindAllString(text, -1) {
		if _, ok := f.words[strings.ToLower(tok)]; ok {
			return true
		}
	}
	return false
}
