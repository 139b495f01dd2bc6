package game

import "github.com/vancomm/minesweeper-board/internal/mines"

// Event is an outcome reported to the presentation layer.
type Event interface {
	event()
}

// BoardLoaded is emitted once a new board is installed.
type BoardLoaded struct {
	Board *mines.Board
}

// BoardCleared is emitted when the board is discarded. Every handle of the
// old board is stale from then on.
type BoardCleared struct{}

// TilesRevealed lists the tiles whose cover must be removed.
type TilesRevealed struct {
	Tiles []mines.Uncovered
}

type BombTriggered struct {
	At mines.Coordinates
}

type TileMarked struct {
	At mines.Coordinates
}

type TileUnmarked struct {
	At mines.Coordinates
}

type BoardCompleted struct{}

func (BoardLoaded) event()    {}
func (BoardCleared) event()   {}
func (TilesRevealed) event()  {}
func (BombTriggered) event()  {}
func (TileMarked) event()     {}
func (TileUnmarked) event()   {}
func (BoardCompleted) event() {}
