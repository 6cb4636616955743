package alphabet

import (
	"fmt"

	"lukechampine.com/frand"
)

// A Bag is the bag o'tiles! Drawing from a shuffled bag samples tiles
// without replacement, which is how boards are generated.
type Bag struct {
	tiles []string
}

// MakeBag returns a full, shuffled bag of tiles for this distribution.
func (ld *LetterDistribution) MakeBag() *Bag {
	tiles := make([]string, 0, ld.numTiles)
	for tile, ct := range ld.Distribution {
		for j := uint8(0); j < ct; j++ {
			tiles = append(tiles, tile)
		}
	}
	b := &Bag{tiles: tiles}
	b.Shuffle()
	return b
}

// Shuffle shuffles the bag.
func (b *Bag) Shuffle() {
	frand.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Draw draws n tiles from the bag.
func (b *Bag) Draw(n int) ([]string, error) {
	if n > len(b.tiles) {
		return nil, fmt.Errorf("tried to draw %v tiles, tile bag has %v",
			n, len(b.tiles))
	}
	drawn := make([]string, n)
	copy(drawn, b.tiles[:n])
	b.tiles = b.tiles[n:]
	return drawn, nil
}

// TilesRemaining returns the number of tiles left in the bag.
func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}
