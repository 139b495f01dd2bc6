package mines

import (
	"fmt"
	"strings"
)

// TileMap is the generated layout of a board. It is not modified once the
// neighbor counts are computed.
type TileMap struct {
	width, height uint16
	bombCount     int
	tiles         []Tile // row-major, y*width + x
}

func newTileMap(width, height uint16) *TileMap {
	return &TileMap{
		width:  width,
		height: height,
		tiles:  make([]Tile, int(width)*int(height)),
	}
}

// FromBombs builds a tile map with bombs at exactly the given coordinates.
func FromBombs(width, height uint16, bombs []Coordinates) (*TileMap, error) {
	if err := validate(width, height, len(bombs)); err != nil {
		return nil, err
	}
	tm := newTileMap(width, height)
	for _, c := range bombs {
		if !tm.InBounds(c) {
			return nil, fmt.Errorf("%w: bomb %s outside %dx%d grid", ErrInvalidParameters, c, width, height)
		}
		i := tm.index(c)
		if tm.tiles[i] == Bomb {
			return nil, fmt.Errorf("%w: duplicate bomb at %s", ErrInvalidParameters, c)
		}
		tm.tiles[i] = Bomb
		tm.bombCount++
	}
	tm.countNeighbors()
	return tm, nil
}

func validate(width, height uint16, bombCount int) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: zero-sized grid %dx%d", ErrInvalidParameters, width, height)
	}
	if bombCount < 0 {
		return fmt.Errorf("%w: negative bomb count %d", ErrInvalidParameters, bombCount)
	}
	if cells := int(width) * int(height); bombCount >= cells {
		return fmt.Errorf(
			"%w: %d bombs leave no safe tile on a %dx%d grid",
			ErrInvalidParameters, bombCount, width, height,
		)
	}
	return nil
}

func (tm *TileMap) index(c Coordinates) int {
	return int(c.Y)*int(tm.width) + int(c.X)
}

func (tm *TileMap) coordinates(i int) Coordinates {
	return Coordinates{X: uint16(i % int(tm.width)), Y: uint16(i / int(tm.width))}
}

// countNeighbors fills in every non-bomb tile from its Moore neighborhood.
func (tm *TileMap) countNeighbors() {
	for i, tile := range tm.tiles {
		if tile == Bomb {
			continue
		}
		n := 0
		for _, nc := range tm.Neighbors(tm.coordinates(i)) {
			if tm.tiles[tm.index(nc)] == Bomb {
				n++
			}
		}
		tm.tiles[i] = NeighborTile(n)
	}
}

func (tm *TileMap) Width() uint16 {
	return tm.width
}

func (tm *TileMap) Height() uint16 {
	return tm.height
}

func (tm *TileMap) BombCount() int {
	return tm.bombCount
}

// Len is the total number of tiles.
func (tm *TileMap) Len() int {
	return len(tm.tiles)
}

func (tm *TileMap) InBounds(c Coordinates) bool {
	return c.X < tm.width && c.Y < tm.height
}

// At returns the tile at c; ok is false when c is off the grid.
func (tm *TileMap) At(c Coordinates) (tile Tile, ok bool) {
	if !tm.InBounds(c) {
		return Empty, false
	}
	return tm.tiles[tm.index(c)], true
}

// Neighbors returns the up to 8 in-bounds coordinates around c, row-major.
// Edge and corner tiles simply have fewer neighbors.
func (tm *TileMap) Neighbors(c Coordinates) []Coordinates {
	neighbors := make([]Coordinates, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		x, y := int(c.X)+d[0], int(c.Y)+d[1]
		if x < 0 || y < 0 || x >= int(tm.width) || y >= int(tm.height) {
			continue
		}
		neighbors = append(neighbors, Coordinates{X: uint16(x), Y: uint16(y)})
	}
	return neighbors
}

// Bombs lists bomb coordinates in row-major order.
func (tm *TileMap) Bombs() []Coordinates {
	bombs := make([]Coordinates, 0, tm.bombCount)
	for i, tile := range tm.tiles {
		if tile == Bomb {
			bombs = append(bombs, tm.coordinates(i))
		}
	}
	return bombs
}

// TileMap implements [fmt.Stringer]. The dump is for diagnostics only.
func (tm *TileMap) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Map (%d, %d) with %d bombs:\n", tm.width, tm.height, tm.bombCount)
	rule := strings.Repeat("-", int(tm.width)+2)
	fmt.Fprintln(&b, rule)
	for y := range int(tm.height) {
		b.WriteByte('|')
		for x := range int(tm.width) {
			b.WriteString(tm.tiles[y*int(tm.width)+x].String())
		}
		b.WriteString("|\n")
	}
	b.WriteString(rule)
	return b.String()
}
