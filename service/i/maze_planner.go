package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-planner/domain"
	"github.com/beka-birhanu/maze-planner/maze"
	"github.com/google/uuid"
)

// MazePlanner exposes maze generation and step planning to hosts.
type MazePlanner interface {
	// Create generates a maze, persists it, and returns the stored record.
	// A non-nil seed makes the generation fully deterministic.
	Create(ctx context.Context, height, width int, seed *int64, side maze.ExitSide, loopDensity float64) (*dmn.MazeRecord, error)

	// Get retrieves a stored maze record by ID.
	Get(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// NextStep returns the next cell for an agent at from moving toward to
	// on the identified maze. Coordinates outside the grid are rejected.
	NextStep(ctx context.Context, id uuid.UUID, from, to maze.Position) (maze.Position, error)

	// SampleRoads returns up to k distinct road cells of the identified
	// maze, drawn uniformly.
	SampleRoads(ctx context.Context, id uuid.UUID, k int, seed *int64) ([]maze.Position, error)
}
