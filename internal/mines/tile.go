package mines

import "strconv"

// Tile is the content of a single grid cell.
//
//   - -1 is a bomb.
//   - 0 is an empty tile with no bombs around it.
//   - 1 to 8 is a bomb neighbor with the given number of bombs around it.
type Tile int8

const (
	Bomb  Tile = -1
	Empty Tile = 0
)

// NeighborTile returns the tile for a safe cell with n bombs around it.
// Zero bombs is always [Empty].
func NeighborTile(n int) Tile {
	if n <= 0 {
		return Empty
	}
	return Tile(min(n, 8))
}

func (t Tile) IsBomb() bool {
	return t == Bomb
}

func (t Tile) IsEmpty() bool {
	return t == Empty
}

// BombCount reports the neighbor count of a bomb neighbor tile. ok is false
// for bombs and empty tiles.
func (t Tile) BombCount() (count int, ok bool) {
	if 1 <= t && t <= 8 {
		return int(t), true
	}
	return 0, false
}

// Tile implements [fmt.Stringer]
func (t Tile) String() string {
	switch {
	case t == Bomb:
		return "*"
	case 1 <= t && t <= 8:
		return strconv.Itoa(int(t))
	default:
		return " "
	}
}
