package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-planner/domain"
	"github.com/google/uuid"
)

// MazeCache defines the interface for the read-through maze cache in front
// of the repository.
type MazeCache interface {
	// Set stores a maze record under its ID.
	Set(ctx context.Context, record *dmn.MazeRecord) error

	// Get retrieves a cached maze record by ID.
	// Returns ErrMazeNotFound on a cache miss.
	Get(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
}
