package mines

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"
)

var Log *slog.Logger = slog.Default()

// Handle is the opaque token a front end associates with a covered tile.
type Handle = uuid.UUID

// Board is the runtime state of a game on top of a generated [TileMap].
//
// A tile is covered for as long as it has an entry in covered. Marked
// tiles are always covered.
type Board struct {
	tileMap     *TileMap
	layout      Layout
	covered     map[Coordinates]Handle
	marked      []Coordinates
	coveredSafe int
}

// Assemble covers every tile of tm. When safeStart is set, start is the
// first empty tile in row-major order and ok reports whether there is one;
// the caller is expected to [Board.Uncover] it before anything else.
func Assemble(tm *TileMap, layout Layout, safeStart bool) (b *Board, start Coordinates, ok bool) {
	b = &Board{
		tileMap:     tm,
		layout:      layout,
		covered:     make(map[Coordinates]Handle, tm.Len()),
		coveredSafe: tm.Len() - tm.BombCount(),
	}
	for y := range tm.Height() {
		for x := range tm.Width() {
			c := Coordinates{X: x, Y: y}
			b.covered[c] = uuid.New()
			if safeStart && !ok && tm.tiles[tm.index(c)] == Empty {
				start, ok = c, true
			}
		}
	}
	Log.Debug("assembled board",
		slog.Int("tiles", tm.Len()),
		slog.Int("bombs", tm.BombCount()),
		slog.Bool("safeStart", ok),
		slog.String("start", start.String()),
	)
	return b, start, ok
}

func (b *Board) TileMap() *TileMap {
	return b.tileMap
}

func (b *Board) Layout() Layout {
	return b.layout
}

func (b *Board) IsCovered(c Coordinates) bool {
	_, ok := b.covered[c]
	return ok
}

func (b *Board) IsMarked(c Coordinates) bool {
	return slices.Contains(b.marked, c)
}

// Handle returns the handle of a covered tile.
func (b *Board) Handle(c Coordinates) (h Handle, ok bool) {
	h, ok = b.covered[c]
	return
}

func (b *Board) CoveredCount() int {
	return len(b.covered)
}

// Marked returns the marked tiles in the order they were marked.
func (b *Board) Marked() []Coordinates {
	return slices.Clone(b.marked)
}

// PointToCoordinates translates a point in board space into the tile under
// it. ok is false outside the board bounds.
func (b *Board) PointToCoordinates(p Point) (c Coordinates, ok bool) {
	return b.layout.coordinates(p, b.tileMap.Width(), b.tileMap.Height())
}

// IsComplete reports whether every safe tile has been uncovered.
func (b *Board) IsComplete() bool {
	return b.coveredSafe == 0
}

func (b *Board) unmark(c Coordinates) bool {
	i := slices.Index(b.marked, c)
	if i < 0 {
		return false
	}
	b.marked = slices.Delete(b.marked, i, i+1)
	return true
}
