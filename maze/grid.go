package maze

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrDimensionTooSmall indicates a generation request below the minimum size.
	ErrDimensionTooSmall = errors.New("maze: height and width must be at least 5")
	// ErrBadFormat indicates a persisted grid that fails shape or content validation.
	ErrBadFormat = errors.New("maze: bad grid format")
)

// Grid is a rectangular array of cells, height x width.
// A Grid returned by the generator or a loader is valid by construction;
// callers treat it as read-only.
type Grid [][]Cell

// NewGrid allocates a height x width grid with every cell set to fill.
func NewGrid(height, width int, fill Cell) Grid {
	grid := make(Grid, height)
	for r := range grid {
		grid[r] = make([]Cell, width)
		for c := range grid[r] {
			grid[r][c] = fill
		}
	}
	return grid
}

// FromInts builds a Grid from a raw 2D integer array, validating that it is
// non-empty, rectangular, and contains only Road/Wall values.
func FromInts(raw [][]int) (Grid, error) {
	if len(raw) == 0 || len(raw[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrBadFormat)
	}

	width := len(raw[0])
	grid := make(Grid, len(raw))
	for r, row := range raw {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadFormat, r, len(row), width)
		}
		cells := make([]Cell, width)
		for c, v := range row {
			if v != int(Road) && v != int(Wall) {
				return nil, fmt.Errorf("%w: cell (%d,%d) has value %d", ErrBadFormat, r, c, v)
			}
			cells[c] = Cell(v)
		}
		grid[r] = cells
	}
	return grid, nil
}

// Height returns the number of rows in the grid.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the number of columns in the grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds reports whether p lies inside the grid extent.
func (g Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Height() && p.Col >= 0 && p.Col < g.Width()
}

// At returns the cell at p. The caller must ensure p is in bounds.
func (g Grid) At(p Position) Cell {
	return g[p.Row][p.Col]
}

// Roads returns every Road position in row-major order.
func (g Grid) Roads() []Position {
	var roads []Position
	for r, row := range g {
		for c, cell := range row {
			if cell == Road {
				roads = append(roads, Position{Row: r, Col: c})
			}
		}
	}
	return roads
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	clone := make(Grid, len(g))
	for r, row := range g {
		clone[r] = make([]Cell, len(row))
		copy(clone[r], row)
	}
	return clone
}

// Validate checks the grid invariants: non-empty, rectangular, and every
// stored value a valid Cell variant.
func (g Grid) Validate() error {
	if len(g) == 0 || len(g[0]) == 0 {
		return fmt.Errorf("%w: empty grid", ErrBadFormat)
	}
	width := len(g[0])
	for r, row := range g {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadFormat, r, len(row), width)
		}
		for c, cell := range row {
			if cell != Road && cell != Wall {
				return fmt.Errorf("%w: cell (%d,%d) has value %d", ErrBadFormat, r, c, cell)
			}
		}
	}
	return nil
}

// MarshalJSON encodes the grid as a bare 2D array of 0/1 integers. Cell has
// kind uint8, so without this each row would take encoding/json's []byte path
// and come out as a base64 string.
func (g Grid) MarshalJSON() ([]byte, error) {
	rows := make([][]int, len(g))
	for r, row := range g {
		ints := make([]int, len(row))
		for c, cell := range row {
			ints[c] = int(cell)
		}
		rows[r] = ints
	}
	return json.Marshal(rows)
}

// UnmarshalJSON decodes the persisted form, a bare 2D array of 0/1 integers,
// re-validating the grid invariants on every load.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var raw [][]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	grid, err := FromInts(raw)
	if err != nil {
		return err
	}
	*g = grid
	return nil
}

// ReadFile loads and validates a persisted grid from path.
func ReadFile(path string) (Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var grid Grid
	if err := json.Unmarshal(data, &grid); err != nil {
		return nil, err
	}
	return grid, nil
}

// WriteFile serializes the grid to path as a 2D JSON array.
func (g Grid) WriteFile(path string) error {
	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
