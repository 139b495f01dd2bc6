package mines

import (
	"slices"

	"github.com/gammazero/deque"
)

type UncoverResult int

const (
	// NoOp means the origin was already uncovered or off the grid.
	NoOp UncoverResult = iota
	Revealed
	BombHit
)

func (r UncoverResult) String() string {
	switch r {
	case Revealed:
		return "revealed"
	case BombHit:
		return "bomb hit"
	default:
		return "no-op"
	}
}

// Uncovered is a tile removed from the covered set, with the handle it had.
type Uncovered struct {
	Coordinates
	Handle Handle
}

type UncoverOutcome struct {
	Result UncoverResult
	// Tiles uncovered by the operation in row-major order. On [BombHit] it
	// holds the bomb that was hit.
	Tiles []Uncovered
}

func (o UncoverOutcome) Coordinates() []Coordinates {
	coords := make([]Coordinates, len(o.Tiles))
	for i, t := range o.Tiles {
		coords[i] = t.Coordinates
	}
	return coords
}

// Uncover reveals origin. An empty tile spreads to its covered neighbors
// until the region is bordered by numbered tiles; marked tiles are never
// entered by the spread, only by uncovering them directly. Hitting a bomb
// stops immediately with the bomb uncovered.
func (b *Board) Uncover(origin Coordinates) UncoverOutcome {
	if !b.IsCovered(origin) {
		return UncoverOutcome{Result: NoOp}
	}

	var (
		queue   deque.Deque[Coordinates]
		visited = map[Coordinates]struct{}{origin: {}}
		tiles   []Uncovered
	)
	queue.PushBack(origin)

	for queue.Len() > 0 {
		c := queue.PopFront()
		handle, ok := b.covered[c]
		if !ok {
			continue
		}
		delete(b.covered, c)
		b.unmark(c)
		tiles = append(tiles, Uncovered{Coordinates: c, Handle: handle})

		tile := b.tileMap.tiles[b.tileMap.index(c)]
		if tile == Bomb {
			return UncoverOutcome{Result: BombHit, Tiles: tiles}
		}
		b.coveredSafe--
		if tile != Empty {
			continue
		}

		for _, n := range b.tileMap.Neighbors(c) {
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			if b.IsCovered(n) && !b.IsMarked(n) {
				queue.PushBack(n)
			}
		}
	}

	slices.SortFunc(tiles, func(x, y Uncovered) int {
		return Compare(x.Coordinates, y.Coordinates)
	})
	return UncoverOutcome{Result: Revealed, Tiles: tiles}
}
