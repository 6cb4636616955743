package lexicon

import (
	"sort"
	"strings"
)

// A Lexicon is an alphabetically ordered list of distinct lowercase words
// supporting exact and prefix-bounded lookup. Sortedness is a precondition:
// New trusts its caller, and searches over an unsorted list silently return
// wrong answers. Use Load to build one from a word list file, which sorts
// once at load time.
type Lexicon struct {
	name  string
	words []string
}

// New wraps an already-sorted word list. It does not copy or re-sort.
func New(name string, words []string) *Lexicon {
	return &Lexicon{name: name, words: words}
}

// Name returns the name of the lexicon, usually the base name of the file
// it was loaded from.
func (lex *Lexicon) Name() string {
	return lex.name
}

// Len returns the number of words in the lexicon.
func (lex *Lexicon) Len() int {
	return len(lex.words)
}

// Contains reports whether `word` is in the lexicon.
func (lex *Lexicon) Contains(word string) bool {
	i := sort.SearchStrings(lex.words, word)
	return i < len(lex.words) && lex.words[i] == word
}

// HasPrefix reports whether any word in the lexicon starts with `prefix`.
// Prefix presence is monotonic: if no word starts with p, no word starts
// with any extension of p, which is what lets the board search prune.
func (lex *Lexicon) HasPrefix(prefix string) bool {
	i := sort.SearchStrings(lex.words, prefix)
	return i < len(lex.words) && strings.HasPrefix(lex.words[i], prefix)
}
