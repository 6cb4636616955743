package lexicon

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testWords = []string{
	"ale", "alert", "alerts", "ant", "bar", "barn", "quest", "question",
	"rat", "rate", "rates", "tar", "zoo",
}

func testLexicon() *Lexicon {
	words := make([]string, len(testWords))
	copy(words, testWords)
	sort.Strings(words)
	return New("test", words)
}

func linearContains(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}

func linearHasPrefix(words []string, prefix string) bool {
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}

func TestContains(t *testing.T) {
	lex := testLexicon()
	probes := append([]string{}, testWords...)
	probes = append(probes, "a", "al", "ale", "alea", "zzz", "", "rate", "ratez")
	for _, probe := range probes {
		assert.Equal(t, linearContains(testWords, probe), lex.Contains(probe),
			"probe: %v", probe)
	}
}

func TestHasPrefix(t *testing.T) {
	lex := testLexicon()
	probes := []string{
		"a", "al", "ale", "alert", "alerts", "alertss", "b", "ba", "bb",
		"q", "qu", "que", "questio", "questions", "r", "ra", "rat", "ratf",
		"z", "zo", "zoo", "zoos", "zz", "",
	}
	for _, probe := range probes {
		assert.Equal(t, linearHasPrefix(testWords, probe), lex.HasPrefix(probe),
			"probe: %v", probe)
	}
}

func TestPrefixMonotonic(t *testing.T) {
	// If no word starts with p, no word starts with any extension of p.
	lex := testLexicon()
	for _, prefix := range []string{"bb", "qx", "zz"} {
		assert.False(t, lex.HasPrefix(prefix))
		for c := 'a'; c <= 'z'; c++ {
			assert.False(t, lex.HasPrefix(prefix+string(c)))
		}
	}
}

func TestName(t *testing.T) {
	lex := testLexicon()
	assert.Equal(t, "test", lex.Name())
	assert.Equal(t, len(testWords), lex.Len())
}
