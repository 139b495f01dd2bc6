package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, width, height uint16, bombs ...Coordinates) *Board {
	t.Helper()
	tm, err := FromBombs(width, height, bombs)
	require.NoError(t, err)
	b, _, _ := Assemble(tm, Layout{}, false)
	return b
}

func coveredTiles(b *Board) (covered []Coordinates) {
	tm := b.TileMap()
	for y := range tm.Height() {
		for x := range tm.Width() {
			if c := (Coordinates{x, y}); b.IsCovered(c) {
				covered = append(covered, c)
			}
		}
	}
	return
}

func TestAssemble(t *testing.T) {
	tm, err := FromBombs(3, 2, []Coordinates{{0, 0}, {2, 1}})
	require.NoError(t, err)

	b, start, ok := Assemble(tm, Layout{}, true)
	assert.Equal(t, 6, b.CoveredCount())
	assert.Empty(t, b.Marked())
	assert.False(t, b.IsComplete())

	// no empty tile on this map
	assert.False(t, ok)
	assert.Equal(t, Coordinates{}, start)

	handles := map[Handle]struct{}{}
	for _, c := range coveredTiles(b) {
		h, ok := b.Handle(c)
		require.True(t, ok)
		handles[h] = struct{}{}
	}
	assert.Len(t, handles, 6)
}

func TestAssembleSafeStartIsFirstEmptyRowMajor(t *testing.T) {
	tm, err := FromBombs(4, 4, []Coordinates{{1, 0}})
	require.NoError(t, err)

	_, start, ok := Assemble(tm, Layout{}, true)
	require.True(t, ok)
	assert.Equal(t, Coordinates{3, 0}, start)

	_, _, ok = Assemble(tm, Layout{}, false)
	assert.False(t, ok)
}

func TestSafeStartSingleBomb(t *testing.T) {
	tm, err := FromBombs(5, 5, []Coordinates{{4, 4}})
	require.NoError(t, err)
	assert.Equal(t, 1, tm.BombCount())

	b, start, ok := Assemble(tm, Layout{}, true)
	require.True(t, ok)
	tile, _ := tm.At(start)
	assert.True(t, tile.IsEmpty())

	outcome := b.Uncover(start)
	assert.Equal(t, Revealed, outcome.Result)
	assert.Len(t, outcome.Tiles, 24)
	assert.NotContains(t, outcome.Coordinates(), Coordinates{4, 4})
	assert.True(t, b.IsComplete())

	outcome = b.Uncover(Coordinates{4, 4})
	assert.Equal(t, BombHit, outcome.Result)
	assert.Equal(t, []Coordinates{{4, 4}}, outcome.Coordinates())
	assert.False(t, b.IsCovered(Coordinates{4, 4}))
}

func TestUncoverNumberedTileStopsSpread(t *testing.T) {
	b := newTestBoard(t, 5, 5, Coordinates{4, 4})

	outcome := b.Uncover(Coordinates{3, 3})
	assert.Equal(t, Revealed, outcome.Result)
	assert.Equal(t, []Coordinates{{3, 3}}, outcome.Coordinates())
	assert.Equal(t, 24, b.CoveredCount())
}

func TestUncoverKeepsHandles(t *testing.T) {
	b := newTestBoard(t, 3, 3, Coordinates{2, 2})
	want, ok := b.Handle(Coordinates{0, 0})
	require.True(t, ok)

	outcome := b.Uncover(Coordinates{0, 0})
	require.Equal(t, Revealed, outcome.Result)
	assert.Equal(t, Coordinates{0, 0}, outcome.Tiles[0].Coordinates)
	assert.Equal(t, want, outcome.Tiles[0].Handle)

	_, ok = b.Handle(Coordinates{0, 0})
	assert.False(t, ok)
}

func TestUncoverNoOp(t *testing.T) {
	b := newTestBoard(t, 5, 5, Coordinates{4, 4})
	b.Uncover(Coordinates{3, 3})
	b.ToggleMark(Coordinates{0, 0})

	covered, marked := b.CoveredCount(), b.Marked()

	tests := []struct {
		name string
		at   Coordinates
	}{
		{name: "already uncovered", at: Coordinates{3, 3}},
		{name: "off grid", at: Coordinates{5, 0}},
		{name: "far off grid", at: Coordinates{100, 100}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			outcome := b.Uncover(test.at)
			assert.Equal(t, NoOp, outcome.Result)
			assert.Empty(t, outcome.Tiles)
			assert.Equal(t, covered, b.CoveredCount())
			assert.Equal(t, marked, b.Marked())
		})
	}
}

func TestUncoverAllEmpty(t *testing.T) {
	b := newTestBoard(t, 7, 4)

	outcome := b.Uncover(Coordinates{3, 2})
	assert.Equal(t, Revealed, outcome.Result)
	assert.Len(t, outcome.Tiles, 28)
	assert.Zero(t, b.CoveredCount())
	assert.True(t, b.IsComplete())
}

func TestUncoverSpreadSkipsMarkedTiles(t *testing.T) {
	b := newTestBoard(t, 5, 5, Coordinates{4, 4})
	require.Equal(t, Marked, b.ToggleMark(Coordinates{0, 4}))

	outcome := b.Uncover(Coordinates{0, 0})
	assert.Equal(t, Revealed, outcome.Result)
	assert.Len(t, outcome.Tiles, 23)
	assert.True(t, b.IsCovered(Coordinates{0, 4}))
	assert.True(t, b.IsMarked(Coordinates{0, 4}))
	assert.False(t, b.IsComplete())

	outcome = b.Uncover(Coordinates{0, 4})
	assert.Equal(t, []Coordinates{{0, 4}}, outcome.Coordinates())
	assert.False(t, b.IsMarked(Coordinates{0, 4}))
	assert.Empty(t, b.Marked())
	assert.True(t, b.IsComplete())
}

func TestUncoverMarkedBomb(t *testing.T) {
	b := newTestBoard(t, 3, 3, Coordinates{1, 1})
	b.ToggleMark(Coordinates{1, 1})

	outcome := b.Uncover(Coordinates{1, 1})
	assert.Equal(t, BombHit, outcome.Result)
	assert.Empty(t, b.Marked())
	assert.Equal(t, 8, b.CoveredCount())
	assert.False(t, b.IsComplete())
}

func TestToggleMark(t *testing.T) {
	b := newTestBoard(t, 4, 4, Coordinates{0, 0})
	c := Coordinates{2, 3}

	assert.Equal(t, Marked, b.ToggleMark(c))
	assert.True(t, b.IsCovered(c))
	assert.Equal(t, []Coordinates{c}, b.Marked())

	assert.Equal(t, Unmarked, b.ToggleMark(c))
	assert.True(t, b.IsCovered(c))
	assert.Empty(t, b.Marked())
	assert.Equal(t, 16, b.CoveredCount())
}

func TestToggleMarkKeepsOrder(t *testing.T) {
	b := newTestBoard(t, 4, 4, Coordinates{0, 0})
	for _, c := range []Coordinates{{3, 3}, {0, 1}, {2, 0}} {
		b.ToggleMark(c)
	}
	b.ToggleMark(Coordinates{0, 1})
	assert.Equal(t, []Coordinates{{3, 3}, {2, 0}}, b.Marked())
}

func TestToggleMarkNoOp(t *testing.T) {
	b := newTestBoard(t, 4, 4, Coordinates{0, 0})
	b.Uncover(Coordinates{3, 3})

	assert.Equal(t, MarkNoOp, b.ToggleMark(Coordinates{3, 3}))
	assert.Equal(t, MarkNoOp, b.ToggleMark(Coordinates{4, 0}))
	assert.Empty(t, b.Marked())
}

// Plays random moves on random boards and checks the board invariants
// after every one of them.
func TestBoardInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	r := rand.New(rand.NewPCG(1, 2))
	for game := range 200 {
		tm, err := Generate(9, 9, 10+game%20, r)
		require.NoError(t, err)
		b, start, ok := Assemble(tm, Layout{}, true)
		if ok {
			for _, c := range b.Uncover(start).Coordinates() {
				tile, _ := tm.At(c)
				require.False(t, tile.IsBomb())
			}
		}

		for !b.IsComplete() {
			covered := coveredTiles(b)
			c := covered[r.IntN(len(covered))]
			tile, _ := tm.At(c)

			if r.IntN(4) == 0 {
				b.ToggleMark(c)
			} else if !tile.IsBomb() {
				outcome := b.Uncover(c)
				require.Equal(t, Revealed, outcome.Result)
				for _, u := range outcome.Coordinates() {
					tile, _ := tm.At(u)
					assert.False(t, tile.IsBomb(), "spread uncovered bomb at %s", u)
					assert.False(t, b.IsCovered(u))
					assert.False(t, b.IsMarked(u))
				}
			}

			for _, m := range b.Marked() {
				assert.True(t, b.IsCovered(m))
			}
			covered = coveredTiles(b)
			assert.Equal(t, assert.ObjectsAreEqual(tm.Bombs(), covered), b.IsComplete())
		}

		assert.Equal(t, tm.Bombs(), coveredTiles(b))
	}
}
