package mines

import (
	"log/slog"
	"math/rand/v2"
)

// Generate places bombCount bombs uniformly at random on a width x height
// grid and computes the neighbor counts.
//
// Bombs are placed by rejection: pick a random tile, retry if it already
// holds a bomb. That degenerates as the bomb count approaches the number of
// tiles, so above half density the remaining bombs are drawn from a
// shrinking list of candidate tiles instead.
func Generate(width, height uint16, bombCount int, r *rand.Rand) (*TileMap, error) {
	if err := validate(width, height, bombCount); err != nil {
		return nil, err
	}

	tm := newTileMap(width, height)
	cells := tm.Len()

	if bombCount*2 <= cells {
		for tm.bombCount < bombCount {
			i := r.IntN(cells)
			if tm.tiles[i] == Bomb {
				continue
			}
			tm.tiles[i] = Bomb
			tm.bombCount++
		}
	} else {
		candidates := make([]int, cells)
		for i := range candidates {
			candidates[i] = i
		}
		k := len(candidates)
		for range bombCount {
			i := r.IntN(k)
			tm.tiles[candidates[i]] = Bomb
			tm.bombCount++
			k--
			candidates[i] = candidates[k]
		}
	}

	tm.countNeighbors()

	Log.Debug("generated tile map",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
		slog.Int("bombs", tm.bombCount),
	)
	return tm, nil
}
