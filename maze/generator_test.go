package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// boundaryRoads counts Road cells on the outer ring, corners included once.
func boundaryRoads(grid Grid) []Position {
	height, width := grid.Height(), grid.Width()
	var roads []Position
	for _, p := range grid.Roads() {
		if p.Row == 0 || p.Row == height-1 || p.Col == 0 || p.Col == width-1 {
			roads = append(roads, p)
		}
	}
	return roads
}

func TestGenerateRejectsSmallDimensions(t *testing.T) {
	gen := NewGenerator(newTestRand(1))

	for _, dims := range [][2]int{{4, 20}, {20, 4}, {0, 0}, {-3, 10}} {
		_, _, err := gen.Generate(dims[0], dims[1], ExitSideRandom, DefaultLoopDensity)
		assert.ErrorIs(t, err, ErrDimensionTooSmall)
	}
}

func TestGenerateSingleExit(t *testing.T) {
	cases := []struct {
		name          string
		height, width int
		side          ExitSide
	}{
		{"minimal", 5, 5, ExitSideRandom},
		{"square odd", 21, 21, ExitSideRandom},
		{"rectangular", 13, 27, ExitSideBottom},
		{"even dimensions", 8, 14, ExitSideRight},
		{"default size", 20, 20, ExitSideRandom},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for seed := int64(0); seed < 5; seed++ {
				grid, exit, err := NewGenerator(newTestRand(seed)).Generate(tc.height, tc.width, tc.side, DefaultLoopDensity)
				assert.NoError(t, err)
				assert.NoError(t, grid.Validate())

				openings := boundaryRoads(grid)
				assert.Len(t, openings, 1)
				assert.Equal(t, exit, openings[0])

				switch tc.side {
				case ExitSideBottom:
					assert.Equal(t, tc.height-1, exit.Row)
				case ExitSideRight:
					assert.Equal(t, tc.width-1, exit.Col)
				}
			}
		})
	}
}

func TestGenerateDeterminism(t *testing.T) {
	t.Run("same seed reproduces the maze", func(t *testing.T) {
		first, firstExit, err := NewGenerator(newTestRand(99)).Generate(20, 20, ExitSideRandom, DefaultLoopDensity)
		assert.NoError(t, err)
		second, secondExit, err := NewGenerator(newTestRand(99)).Generate(20, 20, ExitSideRandom, DefaultLoopDensity)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, firstExit, secondExit)
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		first, _, err := NewGenerator(newTestRand(1)).Generate(21, 21, ExitSideBottom, DefaultLoopDensity)
		assert.NoError(t, err)
		second, _, err := NewGenerator(newTestRand(2)).Generate(21, 21, ExitSideBottom, DefaultLoopDensity)
		assert.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

// TestGenerateSpanningTree checks that with no loop injection the carve
// produces exactly a spanning tree over the lattice rooms: every room is
// reachable from (1,1) and the road count matches rooms + carved walls + the
// single exit cell.
func TestGenerateSpanningTree(t *testing.T) {
	const height, width = 21, 21
	grid, exit, err := NewGenerator(newTestRand(3)).Generate(height, width, ExitSideBottom, 0)
	assert.NoError(t, err)

	// Flood fill from the carve start over road cells.
	start := Position{Row: 1, Col: 1}
	visited := map[Position]struct{}{start: {}}
	queue := []Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range []Position{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}} {
			next := Position{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if !grid.InBounds(next) || grid.At(next) != Road {
				continue
			}
			if _, seen := visited[next]; !seen {
				visited[next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}

	rooms := 0
	for r := 1; r < height-1; r += 2 {
		for c := 1; c < width-1; c += 2 {
			rooms++
			_, reachable := visited[Position{Row: r, Col: c}]
			assert.True(t, reachable, "lattice room (%d,%d) unreachable from (1,1)", r, c)
		}
	}

	// A spanning tree over n rooms carves exactly n-1 walls; the only other
	// road is the exit cell on the border.
	assert.Len(t, grid.Roads(), rooms+(rooms-1)+1)
	_, exitReachable := visited[exit]
	assert.True(t, exitReachable)
}

// TestGenerateLoopDensityBound checks that loop injection opens exactly
// floor(candidates * density) walls. The candidate set is recovered from the
// density-0 grid, which shares the same carve for the same seed.
func TestGenerateLoopDensityBound(t *testing.T) {
	const height, width, seed = 21, 21, 11

	tree, _, err := NewGenerator(newTestRand(seed)).Generate(height, width, ExitSideBottom, 0)
	assert.NoError(t, err)
	looped, _, err := NewGenerator(newTestRand(seed)).Generate(height, width, ExitSideBottom, MaxLoopDensity)
	assert.NoError(t, err)

	candidates := 0
	for r := 1; r < height-1; r++ {
		for c := 1; c < width-1; c++ {
			if tree[r][c] != Wall {
				continue
			}
			horizontal := tree[r][c-1] == Road && tree[r][c+1] == Road
			vertical := tree[r-1][c] == Road && tree[r+1][c] == Road
			if horizontal || vertical {
				candidates++
			}
		}
	}

	added := len(looped.Roads()) - len(tree.Roads())
	assert.Equal(t, candidates/2, added)
}

func TestGenerateClampsLoopDensity(t *testing.T) {
	// A density above the cap behaves exactly like the cap.
	capped, _, err := NewGenerator(newTestRand(5)).Generate(15, 15, ExitSideRight, MaxLoopDensity)
	assert.NoError(t, err)
	over, _, err := NewGenerator(newTestRand(5)).Generate(15, 15, ExitSideRight, 3.0)
	assert.NoError(t, err)
	assert.Equal(t, capped, over)

	// A negative density behaves like zero.
	zero, _, err := NewGenerator(newTestRand(5)).Generate(15, 15, ExitSideRight, 0)
	assert.NoError(t, err)
	negative, _, err := NewGenerator(newTestRand(5)).Generate(15, 15, ExitSideRight, -1)
	assert.NoError(t, err)
	assert.Equal(t, zero, negative)
}

func TestParseExitSide(t *testing.T) {
	side, err := ParseExitSide("bottom")
	assert.NoError(t, err)
	assert.Equal(t, ExitSideBottom, side)

	side, err = ParseExitSide("right")
	assert.NoError(t, err)
	assert.Equal(t, ExitSideRight, side)

	side, err = ParseExitSide("")
	assert.NoError(t, err)
	assert.Equal(t, ExitSideRandom, side)

	_, err = ParseExitSide("top")
	assert.Error(t, err)
}
