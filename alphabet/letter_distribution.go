package alphabet

// A LetterDistribution encodes the frequency of every tile available for
// board generation in a given language. A tile is usually a single letter,
// but it can be a bound digraph such as "qu", which occupies one board
// square and matches as a unit.
type LetterDistribution struct {
	Distribution map[string]uint8
	numTiles     int
}

// EnglishLetterDistribution returns the tile frequencies for the English
// board. Note the "qu" digraph; there is no standalone "q" tile.
func EnglishLetterDistribution() *LetterDistribution {
	dist := map[string]uint8{
		"a": 9, "b": 2, "c": 2, "d": 4, "e": 12, "f": 2, "g": 3, "h": 2,
		"i": 9, "j": 1, "k": 1, "l": 4, "m": 2, "n": 6, "o": 8, "p": 2,
		"qu": 2, "r": 6, "s": 4, "t": 6, "u": 4, "v": 2, "w": 2, "x": 1,
		"y": 2, "z": 1,
	}
	return &LetterDistribution{dist, 99}
}

// RussianLetterDistribution returns the tile frequencies for the Russian
// board, from the Russian Scrabble letter distribution.
func RussianLetterDistribution() *LetterDistribution {
	dist := map[string]uint8{
		"а": 8, "б": 2, "в": 4, "г": 2, "д": 4, "е": 8, "ё": 1, "ж": 1,
		"з": 2, "и": 5, "й": 1, "к": 4, "л": 4, "м": 3, "н": 5, "о": 10,
		"п": 4, "р": 5, "с": 5, "т": 5, "у": 4, "ф": 1, "х": 1, "ц": 1,
		"ч": 1, "ш": 1, "щ": 1, "ъ": 1, "ы": 2, "ь": 2, "э": 1, "ю": 1,
		"я": 2,
	}
	return &LetterDistribution{dist, 102}
}

// NumTotalTiles returns the number of tiles in a full bag drawn from this
// distribution.
func (ld *LetterDistribution) NumTotalTiles() int {
	return ld.numTiles
}
