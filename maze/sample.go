package maze

import (
	"math/rand"
	"time"
)

// SampleRoads returns up to k distinct Road positions drawn uniformly from
// the grid. It returns nil when k <= 0 or the grid has no roads. A seeded
// rng makes the draw reproducible; a nil rng gets a time-seeded source.
func SampleRoads(grid Grid, k int, rng *rand.Rand) []Position {
	if k <= 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	roads := grid.Roads()
	if len(roads) == 0 {
		return nil
	}

	rng.Shuffle(len(roads), func(i, j int) {
		roads[i], roads[j] = roads[j], roads[i]
	})
	if k > len(roads) {
		k = len(roads)
	}
	return roads[:k]
}
