package mines

import (
	"fmt"
	"math/rand/v2"
)

// Options are the board generation parameters supplied by the caller.
type Options struct {
	Width, Height uint16
	BombCount     int
	// TilePadding is subtracted from the tile size when drawing a tile.
	TilePadding float64
	// SafeStart uncovers the first empty tile right after assembly.
	SafeStart bool
	TileSize  TileSize
	Position  Position
}

func DefaultOptions() Options {
	return Options{
		Width:       11,
		Height:      11,
		BombCount:   15,
		TilePadding: 3,
		SafeStart:   true,
		TileSize:    AdaptiveTileSize{Min: 10, Max: 50},
		Position:    Centered{},
	}
}

func (o Options) Validate() error {
	return validate(o.Width, o.Height, o.BombCount)
}

// Options implements [fmt.Stringer]
func (o Options) String() string {
	return fmt.Sprintf("%dx%d(%d)", o.Width, o.Height, o.BombCount)
}

// Layout resolves the tile size and position policies against a window.
// Nil policies fall back to those of [DefaultOptions].
func (o Options) Layout(window Point) Layout {
	defaults := DefaultOptions()
	sizing, position := o.TileSize, o.Position
	if sizing == nil {
		sizing = defaults.TileSize
	}
	if position == nil {
		position = defaults.Position
	}
	tileSize := sizing.resolve(window, o.Width, o.Height)
	size := Point{X: float64(o.Width) * tileSize, Y: float64(o.Height) * tileSize}
	return Layout{
		Bounds:      Bounds{Position: position.resolve(window, size), Size: size},
		TileSize:    tileSize,
		TilePadding: o.TilePadding,
	}
}

// NewBoard generates a tile map and assembles a board from it. When safe
// start is on and an empty tile exists, start holds the tile the caller must
// uncover first.
func (o Options) NewBoard(window Point, r *rand.Rand) (b *Board, start Coordinates, ok bool, err error) {
	tm, err := Generate(o.Width, o.Height, o.BombCount, r)
	if err != nil {
		return nil, Coordinates{}, false, err
	}
	b, start, ok = Assemble(tm, o.Layout(window), o.SafeStart)
	return b, start, ok, nil
}
