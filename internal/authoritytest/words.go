package authoritytest

import (
	"strings"

	"github.com/samber/lo"
)

// DefaultWords is the built-in dictionary for Duel. Every entry is both a
// possible target and an allowed guess.
var DefaultWords = []string{
	"crane", "slate", "mango", "pride", "bride", "arise", "later", "crate",
	"slant", "stole", "slump", "pacer", "admit", "blend", "crown", "flick",
	"glint", "prank", "shone", "snail", "taste", "unite", "vouch", "worst",
	"trace", "cigar", "rebut", "sissy", "humph", "awake", "blush", "focal",
}

// Lexicon is a normalized word list with set lookup.
type Lexicon struct {
	words []string
	set   map[string]struct{}
}

// NewLexicon lowercases and trims list, keeping only 5-letter a-z words.
func NewLexicon(list []string) *Lexicon {
	words := lo.Uniq(lo.FilterMap(list, func(w string, _ int) (string, bool) {
		w = strings.TrimSpace(strings.ToLower(w))
		return w, len(w) == 5 && isAlpha(w)
	}))
	return &Lexicon{words: words, set: toSet(words)}
}

func (l *Lexicon) Words() []string { return l.words }

// Allowed reports whether w is in the list.
func (l *Lexicon) Allowed(w string) bool {
	_, ok := l.set[strings.ToLower(w)]
	return ok
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
