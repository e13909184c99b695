package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleRoads(t *testing.T) {
	grid := Grid{
		{Wall, Wall, Wall, Wall, Wall},
		{Wall, Road, Road, Road, Wall},
		{Wall, Road, Wall, Road, Wall},
		{Wall, Wall, Wall, Wall, Wall},
	}

	t.Run("non-positive count yields nothing", func(t *testing.T) {
		assert.Nil(t, SampleRoads(grid, 0, newTestRand(1)))
		assert.Nil(t, SampleRoads(grid, -3, newTestRand(1)))
	})

	t.Run("no roads yields nothing", func(t *testing.T) {
		walls := NewGrid(4, 4, Wall)
		assert.Nil(t, SampleRoads(walls, 2, newTestRand(1)))
	})

	t.Run("samples are distinct road cells", func(t *testing.T) {
		samples := SampleRoads(grid, 4, newTestRand(9))
		assert.Len(t, samples, 4)

		seen := make(map[Position]struct{})
		for _, p := range samples {
			assert.Equal(t, Road, grid.At(p))
			_, dup := seen[p]
			assert.False(t, dup, "duplicate sample %v", p)
			seen[p] = struct{}{}
		}
	})

	t.Run("count beyond road cells returns them all", func(t *testing.T) {
		samples := SampleRoads(grid, 100, newTestRand(9))
		assert.Len(t, samples, len(grid.Roads()))
	})

	t.Run("seeded draws are reproducible", func(t *testing.T) {
		first := SampleRoads(grid, 3, newTestRand(42))
		second := SampleRoads(grid, 3, newTestRand(42))
		assert.Equal(t, first, second)
	})
}
