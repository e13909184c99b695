// Package maze builds rectangular grid mazes with a single guaranteed
// boundary exit. Generation carves a spanning tree over an odd-indexed
// lattice with randomized depth-first search, injects loops by knocking
// out interior walls, seals the boundary, and opens exactly one exit.
package maze

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	// MinDimension is the smallest accepted maze height or width.
	MinDimension = 5
	// DefaultSize is the default maze height and width.
	DefaultSize = 20
	// DefaultLoopDensity is the default fraction of loop candidates to open.
	DefaultLoopDensity = 0.08
	// MaxLoopDensity caps the fraction of loop candidates to open.
	MaxLoopDensity = 0.5
)

// ExitSide selects the boundary side the single exit is opened on.
type ExitSide string

const (
	// ExitSideRandom lets the generator draw the side from its RNG.
	ExitSideRandom ExitSide = ""
	// ExitSideBottom opens the exit on the bottom border row.
	ExitSideBottom ExitSide = "bottom"
	// ExitSideRight opens the exit on the rightmost border column.
	ExitSideRight ExitSide = "right"
)

// ParseExitSide parses a textual exit side. The empty string selects a
// random side.
func ParseExitSide(s string) (ExitSide, error) {
	switch ExitSide(s) {
	case ExitSideRandom, ExitSideBottom, ExitSideRight:
		return ExitSide(s), nil
	default:
		return ExitSideRandom, fmt.Errorf("maze: unknown exit side %q, want %q or %q", s, ExitSideBottom, ExitSideRight)
	}
}

// latticeJumps are the 2-cell moves between lattice rooms during the carve.
var latticeJumps = []Position{{Row: -2}, {Row: 2}, {Col: -2}, {Col: 2}}

// Generator produces single-exit mazes. All randomness flows through the
// injected RNG, so a seeded Generator is fully deterministic and independent
// Generators never interfere with each other.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator drawing from rng. A nil rng gets a
// time-seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate builds a height x width maze and returns it together with the
// coordinate of its single boundary exit.
//
// Dimensions below MinDimension are rejected before any work. loopDensity is
// clamped to [0, MaxLoopDensity]. Even dimensions are accepted: the carve
// lattice only visits odd interior coordinates, so they leave a stripe of
// permanently walled cells along the boundary.
func (g *Generator) Generate(height, width int, side ExitSide, loopDensity float64) (Grid, Position, error) {
	if height < MinDimension || width < MinDimension {
		return nil, Position{}, fmt.Errorf("%w: got %dx%d", ErrDimensionTooSmall, height, width)
	}
	if loopDensity < 0 {
		loopDensity = 0
	} else if loopDensity > MaxLoopDensity {
		loopDensity = MaxLoopDensity
	}

	grid := NewGrid(height, width, Wall)

	// Lattice rooms: odd row, odd column, strictly interior.
	for r := 1; r < height-1; r += 2 {
		for c := 1; c < width-1; c += 2 {
			grid[r][c] = Road
		}
	}

	g.carve(grid)
	g.injectLoops(grid, loopDensity)
	sealBoundary(grid)

	if side == ExitSideRandom {
		if g.rng.Intn(2) == 0 {
			side = ExitSideBottom
		} else {
			side = ExitSideRight
		}
	}

	var exit Position
	if side == ExitSideBottom {
		exit = g.openBottom(grid)
	} else {
		exit = g.openRight(grid)
	}

	if !hasSingleExit(grid, exit) {
		panic(fmt.Sprintf("maze: generated %dx%d grid violates the single-exit invariant at (%d,%d)",
			height, width, exit.Row, exit.Col))
	}
	return grid, exit, nil
}

// carve runs the randomized depth-first carve from lattice room (1,1),
// keeping an explicit stack so the walk never grows the call stack.
func (g *Generator) carve(grid Grid) {
	start := Position{Row: 1, Col: 1}
	stack := []Position{start}
	seen := map[Position]struct{}{start: {}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var unvisited []Position
		for _, jump := range latticeJumps {
			next := Position{Row: cur.Row + jump.Row, Col: cur.Col + jump.Col}
			if !isLatticeRoom(grid, next) {
				continue
			}
			if _, ok := seen[next]; !ok {
				unvisited = append(unvisited, next)
			}
		}

		if len(unvisited) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := unvisited[g.rng.Intn(len(unvisited))]
		// Knock out the single wall between the two rooms.
		grid[(cur.Row+next.Row)/2][(cur.Col+next.Col)/2] = Road
		seen[next] = struct{}{}
		stack = append(stack, next)
	}
}

// injectLoops converts floor(candidates * density) interior walls that sit
// directly between two roads on the same axis into roads, adding cycles
// without opening the boundary.
func (g *Generator) injectLoops(grid Grid, density float64) {
	height, width := grid.Height(), grid.Width()

	var candidates []Position
	for r := 1; r < height-1; r++ {
		for c := 1; c < width-1; c++ {
			if grid[r][c] != Wall {
				continue
			}
			horizontal := grid[r][c-1] == Road && grid[r][c+1] == Road
			vertical := grid[r-1][c] == Road && grid[r+1][c] == Road
			if horizontal || vertical {
				candidates = append(candidates, Position{Row: r, Col: c})
			}
		}
	}

	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	open := int(float64(len(candidates)) * density)
	for _, p := range candidates[:open] {
		grid[p.Row][p.Col] = Road
	}
}

// openBottom opens the exit on the bottom border and returns its coordinate.
// When no interior column touches the border with a road, a vertical tunnel
// is carved upward from a random column until it reaches a road.
func (g *Generator) openBottom(grid Grid) Position {
	height, width := grid.Height(), grid.Width()

	var cols []int
	for c := 1; c < width-1; c++ {
		if grid[height-2][c] == Road {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		c := 1 + g.rng.Intn(width-2)
		for r := height - 2; r >= 1; r-- {
			if grid[r][c] == Road {
				break
			}
			grid[r][c] = Road
		}
		cols = []int{c}
	}

	c := cols[g.rng.Intn(len(cols))]
	grid[height-1][c] = Road
	return Position{Row: height - 1, Col: c}
}

// openRight is the right-border counterpart of openBottom.
func (g *Generator) openRight(grid Grid) Position {
	height, width := grid.Height(), grid.Width()

	var rows []int
	for r := 1; r < height-1; r++ {
		if grid[r][width-2] == Road {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		r := 1 + g.rng.Intn(height-2)
		for c := width - 2; c >= 1; c-- {
			if grid[r][c] == Road {
				break
			}
			grid[r][c] = Road
		}
		rows = []int{r}
	}

	r := rows[g.rng.Intn(len(rows))]
	grid[r][width-1] = Road
	return Position{Row: r, Col: width - 1}
}

// isLatticeRoom reports whether p is an odd-indexed, strictly interior
// lattice room.
func isLatticeRoom(grid Grid, p Position) bool {
	return p.Row >= 1 && p.Row < grid.Height()-1 &&
		p.Col >= 1 && p.Col < grid.Width()-1 &&
		p.Row%2 == 1 && p.Col%2 == 1
}

// sealBoundary forces the entire outer ring to Wall, overwriting anything
// carving or loop injection may have touched there.
func sealBoundary(grid Grid) {
	height, width := grid.Height(), grid.Width()
	for c := 0; c < width; c++ {
		grid[0][c] = Wall
		grid[height-1][c] = Wall
	}
	for r := 0; r < height; r++ {
		grid[r][0] = Wall
		grid[r][width-1] = Wall
	}
}

// hasSingleExit reports whether the outer ring contains exactly one road
// and it is the reported exit.
func hasSingleExit(grid Grid, exit Position) bool {
	height, width := grid.Height(), grid.Width()

	onBorder := exit.Row == 0 || exit.Row == height-1 || exit.Col == 0 || exit.Col == width-1
	if !grid.InBounds(exit) || !onBorder {
		return false
	}

	roads := 0
	for c := 0; c < width; c++ {
		if grid[0][c] == Road {
			roads++
		}
		if grid[height-1][c] == Road {
			roads++
		}
	}
	for r := 0; r < height; r++ {
		if grid[r][0] == Road {
			roads++
		}
		if grid[r][width-1] == Road {
			roads++
		}
	}
	return roads == 1 && grid.At(exit) == Road
}
