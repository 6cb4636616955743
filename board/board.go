package board

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/iafisher/boggle/alphabet"
)

// MinDim is the smallest allowed board dimension.
const MinDim = 3

// A Board is a square grid of letter tiles, stored in row-major order. A
// tile is a short lowercase string; most tiles are a single letter, but a
// tile may be a bound digraph such as "qu". The board is immutable after
// construction.
type Board struct {
	letters []string
	dim     int
}

// New creates a board from a row-major list of tiles. The number of tiles
// must be a perfect square, at least MinDim on a side, and every tile must
// be non-empty.
func New(letters []string) (*Board, error) {
	dim := int(math.Sqrt(float64(len(letters))))
	if dim*dim != len(letters) {
		return nil, fmt.Errorf("number of tiles (%v) is not a perfect square",
			len(letters))
	}
	if dim < MinDim {
		return nil, fmt.Errorf("board must be at least %v tiles per side, got %v",
			MinDim, dim)
	}
	for _, letter := range letters {
		if letter == "" {
			return nil, errors.New("board tiles must be non-empty")
		}
	}
	b := &Board{letters: make([]string, len(letters)), dim: dim}
	copy(b.letters, letters)
	return b, nil
}

// NewRandom creates a board of dim×dim tiles drawn at random, without
// replacement, from a full bag of the given letter distribution.
func NewRandom(ld *alphabet.LetterDistribution, dim int) (*Board, error) {
	if dim < MinDim {
		return nil, fmt.Errorf("board must be at least %v tiles per side, got %v",
			MinDim, dim)
	}
	bag := ld.MakeBag()
	letters, err := bag.Draw(dim * dim)
	if err != nil {
		return nil, err
	}
	return &Board{letters: letters, dim: dim}, nil
}

// Dim returns the number of tiles per side.
func (b *Board) Dim() int {
	return b.dim
}

// NumTiles returns the total number of tiles on the board.
func (b *Board) NumTiles() int {
	return b.dim * b.dim
}

// TileAt returns the tile at the given row-major index. It panics on an
// out-of-range index.
func (b *Board) TileAt(index int) string {
	return b.letters[index]
}

// Adjacent returns the indices adjacent to `index` on the board: up to 8
// neighbors, fewer at edges and corners. The order is fixed for a given
// index and board dimension.
func (b *Board) Adjacent(index int) []int {
	adj := make([]int, 0, 8)
	if !b.topEdge(index) {
		if !b.leftEdge(index) {
			adj = append(adj, b.above(b.left(index)))
		}
		adj = append(adj, b.above(index))
		if !b.rightEdge(index) {
			adj = append(adj, b.above(b.right(index)))
		}
	}
	if !b.leftEdge(index) {
		adj = append(adj, b.left(index))
	}
	if !b.rightEdge(index) {
		adj = append(adj, b.right(index))
	}
	if !b.bottomEdge(index) {
		if !b.leftEdge(index) {
			adj = append(adj, b.below(b.left(index)))
		}
		adj = append(adj, b.below(index))
		if !b.rightEdge(index) {
			adj = append(adj, b.below(b.right(index)))
		}
	}
	return adj
}

func (b *Board) topEdge(index int) bool    { return index < b.dim }
func (b *Board) bottomEdge(index int) bool { return index >= b.dim*(b.dim-1) }
func (b *Board) leftEdge(index int) bool   { return index%b.dim == 0 }
func (b *Board) rightEdge(index int) bool  { return index%b.dim == b.dim-1 }

func (b *Board) above(index int) int { return index - b.dim }
func (b *Board) below(index int) int { return index + b.dim }
func (b *Board) left(index int) int  { return index - 1 }
func (b *Board) right(index int) int { return index + 1 }

// ToDisplayText returns a console-friendly rendition of the board. Digraph
// tiles get one less padding space so columns stay lined up.
func (b *Board) ToDisplayText() string {
	var str strings.Builder
	str.WriteString("\n")
	for i := 0; i < b.dim; i++ {
		str.WriteString("  ")
		for j := 0; j < b.dim; j++ {
			letter := strings.ToUpper(b.letters[i*b.dim+j])
			str.WriteString(letter)
			if utf8.RuneCountInString(letter) == 2 {
				str.WriteString(" ")
			} else {
				str.WriteString("  ")
			}
		}
		str.WriteString("\n")
	}
	return str.String()
}
