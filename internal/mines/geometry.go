package mines

import "fmt"

// Point is a position in the front end's abstract units: pixels for a
// graphical board, character cells for a terminal. The origin is the
// top-left corner and Y grows with the row index.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Point implements [fmt.Stringer]
func (p Point) String() string {
	return fmt.Sprintf("[%g, %g]", p.X, p.Y)
}

// Bounds is an axis-aligned rectangle.
type Bounds struct {
	Position Point
	Size     Point
}

// Contains reports whether p lies inside b. The far edges are excluded so
// that every contained point maps to a tile.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Position.X && p.Y >= b.Position.Y &&
		p.X < b.Position.X+b.Size.X && p.Y < b.Position.Y+b.Size.Y
}

// TileSize decides the edge length of a square tile. It is either
// [FixedTileSize] or [AdaptiveTileSize].
type TileSize interface {
	resolve(window Point, width, height uint16) float64
}

// FixedTileSize uses the same size regardless of the window.
type FixedTileSize float64

func (s FixedTileSize) resolve(Point, uint16, uint16) float64 {
	return float64(s)
}

// AdaptiveTileSize fits the board into the window, clamped to [Min, Max].
type AdaptiveTileSize struct {
	Min, Max float64
}

func (s AdaptiveTileSize) resolve(window Point, width, height uint16) float64 {
	fit := min(window.X/float64(width), window.Y/float64(height))
	return max(s.Min, min(fit, s.Max))
}

// Position decides where the board sits in the window. It is either
// [Centered] or [CustomPosition].
type Position interface {
	resolve(window, board Point) Point
}

// Centered puts the board in the middle of the window, moved by Offset.
type Centered struct {
	Offset Point
}

func (c Centered) resolve(window, board Point) Point {
	return Point{
		X: (window.X-board.X)/2 + c.Offset.X,
		Y: (window.Y-board.Y)/2 + c.Offset.Y,
	}
}

// CustomPosition puts the board's top-left corner at a fixed point.
type CustomPosition Point

func (c CustomPosition) resolve(Point, Point) Point {
	return Point(c)
}

// Layout is the resolved geometry of a board.
type Layout struct {
	Bounds      Bounds
	TileSize    float64
	TilePadding float64
}

// TileRect is the drawable area of the tile at c: its slot shrunk by the
// padding on every side.
func (l Layout) TileRect(c Coordinates) Bounds {
	size := max(l.TileSize-l.TilePadding, 0)
	inset := (l.TileSize - size) / 2
	return Bounds{
		Position: Point{
			X: l.Bounds.Position.X + float64(c.X)*l.TileSize + inset,
			Y: l.Bounds.Position.Y + float64(c.Y)*l.TileSize + inset,
		},
		Size: Point{X: size, Y: size},
	}
}

// coordinates converts a point to a grid address, if the point is on the board.
func (l Layout) coordinates(p Point, width, height uint16) (Coordinates, bool) {
	if l.TileSize <= 0 || !l.Bounds.Contains(p) {
		return Coordinates{}, false
	}
	rel := p.Sub(l.Bounds.Position)
	x, y := int(rel.X/l.TileSize), int(rel.Y/l.TileSize)
	if x >= int(width) || y >= int(height) {
		return Coordinates{}, false
	}
	return Coordinates{X: uint16(x), Y: uint16(y)}, true
}
