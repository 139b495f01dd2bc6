package mines

import (
	"cmp"
	"fmt"
)

// Coordinates address a single tile on the grid. X is the column, Y the row.
type Coordinates struct {
	X, Y uint16
}

// Compare orders coordinates row-major: by Y first, then by X.
func Compare(a, b Coordinates) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// Coordinates implements [fmt.Stringer]
func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Moore neighborhood offsets in row-major order
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
