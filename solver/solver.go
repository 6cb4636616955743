// Package solver implements the two board searches: verifying that a single
// word can be spelled on a board, and enumerating every word in a lexicon
// that can be spelled anywhere on a board.
//
// Both searches walk simple paths: consecutive tiles must be adjacent
// (including diagonals) and no tile may be used twice in one path. Tiles are
// matched as whole units, so a digraph tile like "qu" consumes two
// characters of the word in a single step.
package solver

import (
	"strings"
	"unicode/utf8"

	"github.com/iafisher/boggle/board"
	"github.com/iafisher/boggle/lexicon"
)

// Check reports whether `word` can be spelled by a simple path of adjacent
// tiles on the board.
func Check(b *board.Board, word string) bool {
	if word == "" {
		return false
	}
	visited := make([]bool, b.NumTiles())
	for i := 0; i < b.NumTiles(); i++ {
		tile := b.TileAt(i)
		if !strings.HasPrefix(word, tile) {
			continue
		}
		visited[i] = true
		ok := checkFrom(b, word[len(tile):], i, visited)
		visited[i] = false
		if ok {
			return true
		}
	}
	return false
}

// checkFrom reports whether the remaining suffix of the word can be spelled
// starting from a neighbor of lastIndex, skipping tiles already on the path.
func checkFrom(b *board.Board, word string, lastIndex int, visited []bool) bool {
	if word == "" {
		return true
	}

	for _, index := range b.Adjacent(lastIndex) {
		if visited[index] {
			continue
		}

		tile := b.TileAt(index)
		if !strings.HasPrefix(word, tile) {
			continue
		}

		visited[index] = true
		ok := checkFrom(b, word[len(tile):], index, visited)
		visited[index] = false
		if ok {
			return true
		}
	}

	return false
}

// AllWords returns every word in the lexicon of at least minLength
// characters that can be spelled on the board. The same word may be
// spellable along many paths; the result holds each word once.
func AllWords(b *board.Board, lex *lexicon.Lexicon, minLength int) map[string]bool {
	words := make(map[string]bool)
	visited := make([]bool, b.NumTiles())
	for i := 0; i < b.NumTiles(); i++ {
		visited[i] = true
		allWordsFrom(b, lex, b.TileAt(i), i, visited, minLength, words)
		visited[i] = false
	}
	return words
}

// allWordsFrom accumulates every word that extends the candidate string
// `word`, whose path ends at lastIndex. If no lexicon entry starts with the
// candidate, the whole branch is dead: prefix presence is monotonic, so no
// extension can succeed either.
func allWordsFrom(b *board.Board, lex *lexicon.Lexicon, word string,
	lastIndex int, visited []bool, minLength int, words map[string]bool) {

	if !lex.HasPrefix(word) {
		return
	}
	if utf8.RuneCountInString(word) >= minLength && lex.Contains(word) {
		// Keep searching: a valid word may be a prefix of a longer one.
		words[word] = true
	}

	for _, index := range b.Adjacent(lastIndex) {
		if visited[index] {
			continue
		}
		visited[index] = true
		allWordsFrom(b, lex, word+b.TileAt(index), index, visited, minLength, words)
		visited[index] = false
	}
}

// Score returns the point value of a found word, based on its length.
func Score(word string) int {
	switch n := utf8.RuneCountInString(word); {
	case n == 3 || n == 4:
		return 1
	case n == 5:
		return 2
	case n == 6:
		return 3
	case n == 7:
		return 5
	case n >= 8:
		return 11
	default:
		return 0
	}
}
