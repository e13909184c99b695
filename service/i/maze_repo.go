package i

import (
	"errors"

	dmn "github.com/beka-birhanu/maze-planner/domain"
	"github.com/google/uuid"
)

// ErrMazeNotFound is returned by repositories and caches when no record
// exists for the requested ID.
var ErrMazeNotFound = errors.New("maze not found")

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze record in the repository.
	// If the record already exists, it updates the record. Otherwise, it creates a new one.
	Save(record *dmn.MazeRecord) error

	// ByID retrieves a maze record by its unique ID.
	// Returns ErrMazeNotFound if the record does not exist.
	ByID(id uuid.UUID) (*dmn.MazeRecord, error)
}
