package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/beka-birhanu/maze-planner/config"
	dmn "github.com/beka-birhanu/maze-planner/domain"
	"github.com/beka-birhanu/maze-planner/maze"
	"github.com/beka-birhanu/maze-planner/planner"
	"github.com/beka-birhanu/maze-planner/service/i"
	"github.com/google/uuid"
)

// ErrOutOfBounds indicates externally supplied coordinates outside the grid
// extent. Detected before the planner runs.
var ErrOutOfBounds = errors.New("start or goal is outside the maze")

// MazeService orchestrates maze generation, persistence, and step planning
// for the hosting layers. Reads are cache-aside: cache first, then the
// repository with a cache backfill.
type MazeService struct {
	repo   i.MazeRepo
	cache  i.MazeCache
	logger *log.Logger
}

// Config holds the dependencies for creating a MazeService.
type Config struct {
	Repo   i.MazeRepo
	Cache  i.MazeCache // optional
	Logger *log.Logger
}

// NewMazeService creates a MazeService from the given dependencies.
func NewMazeService(c *Config) (*MazeService, error) {
	if c.Repo == nil {
		return nil, errors.New("maze service requires a repository")
	}
	if c.Logger == nil {
		return nil, errors.New("maze service requires a logger")
	}
	return &MazeService{
		repo:   c.Repo,
		cache:  c.Cache,
		logger: c.Logger,
	}, nil
}

// Create generates a maze, persists it, and returns the stored record.
func (s *MazeService) Create(ctx context.Context, height, width int, seed *int64, side maze.ExitSide, loopDensity float64) (*dmn.MazeRecord, error) {
	var rng *rand.Rand
	if seed != nil {
		rng = rand.New(rand.NewSource(*seed))
	}

	grid, exit, err := maze.NewGenerator(rng).Generate(height, width, side, loopDensity)
	if err != nil {
		return nil, err
	}

	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		Grid:      grid,
		Exit:      exit,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(record); err != nil {
		return nil, fmt.Errorf("saving maze: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, record); err != nil {
			s.logger.Printf("%s[ERROR]%s caching maze %s: %v", config.LogErrorColor, config.LogColorReset, record.ID, err)
		}
	}
	return record, nil
}

// Get retrieves a maze record, consulting the cache before the repository.
func (s *MazeService) Get(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	if s.cache != nil {
		if record, err := s.cache.Get(ctx, id); err == nil {
			return record, nil
		}
	}

	record, err := s.repo.ByID(id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, record); err != nil {
			s.logger.Printf("%s[ERROR]%s caching maze %s: %v", config.LogErrorColor, config.LogColorReset, record.ID, err)
		}
	}
	return record, nil
}

// NextStep validates both coordinates against the grid extent and returns
// the planner's next cell for the identified maze.
func (s *MazeService) NextStep(ctx context.Context, id uuid.UUID, from, to maze.Position) (maze.Position, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return maze.Position{}, err
	}
	if !record.Grid.InBounds(from) || !record.Grid.InBounds(to) {
		return maze.Position{}, ErrOutOfBounds
	}
	return planner.NextStep(record.Grid, from, to), nil
}

// SampleRoads returns up to k distinct road cells of the identified maze.
func (s *MazeService) SampleRoads(ctx context.Context, id uuid.UUID, k int, seed *int64) ([]maze.Position, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if seed != nil {
		rng = rand.New(rand.NewSource(*seed))
	}
	return maze.SampleRoads(record.Grid, k, rng), nil
}
