// Package mazeapi provides structures and utilities for serving maze
// generation and step planning over HTTP.
package mazeapi

import (
	"time"

	"github.com/beka-birhanu/maze-planner/maze"
	"github.com/google/uuid"
)

// Coordinate is a grid coordinate in API payloads. Pointer fields keep zero
// rows and columns distinguishable from missing fields under binding.
type Coordinate struct {
	Row *int `json:"r" binding:"required"`
	Col *int `json:"c" binding:"required"`
}

// GenerateRequest represents a request to generate and store a new maze.
// Height and width are pointers so an explicit zero is rejected as too small
// instead of being mistaken for an absent field and defaulted.
type GenerateRequest struct {
	Height      *int     `json:"height"`
	Width       *int     `json:"width"`
	Seed        *int64   `json:"seed"`
	ExitSide    string   `json:"exit_side"`
	LoopDensity *float64 `json:"loop_density"`
}

// MazeResponse represents a stored maze returned to the caller.
type MazeResponse struct {
	ID        uuid.UUID     `json:"id"`
	Exit      maze.Position `json:"exit"`
	Grid      maze.Grid     `json:"grid"`
	CreatedAt time.Time     `json:"created_at"`
}

// NextStepRequest represents a request for an agent's next move.
type NextStepRequest struct {
	From Coordinate `json:"from" binding:"required"`
	To   Coordinate `json:"to" binding:"required"`
}

// NextStepResponse represents the computed next coordinate.
type NextStepResponse struct {
	Next maze.Position `json:"next"`
}

// RoadsResponse represents sampled road coordinates.
type RoadsResponse struct {
	Roads []maze.Position `json:"roads"`
}
