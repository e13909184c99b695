package maze

// Cell represents the state of a single cell in a maze grid.
// A cell is either passable (Road) or blocked (Wall); the integer
// values are also the persisted wire form.
type Cell uint8

const (
	// Road is a passable cell.
	Road Cell = 0
	// Wall is a blocked cell.
	Wall Cell = 1
)

// Position represents the position of a cell in the maze grid.
type Position struct {
	Row int `json:"r"` // Row index of the cell, 0-indexed from the top
	Col int `json:"c"` // Column index of the cell, 0-indexed from the left
}
