// Package domain holds the models shared between the service layer and the
// hosting infrastructure.
package domain

import (
	"time"

	"github.com/beka-birhanu/maze-planner/maze"
	"github.com/google/uuid"
)

// MazeRecord is a generated maze as stored and served by the hosting layers.
type MazeRecord struct {
	ID        uuid.UUID     `bson:"_id" json:"id"`
	Grid      maze.Grid     `bson:"grid" json:"grid"`
	Exit      maze.Position `bson:"exit" json:"exit"`
	CreatedAt time.Time     `bson:"createdAt" json:"created_at"`
}
