package service

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	dmn "github.com/beka-birhanu/maze-planner/domain"
	"github.com/beka-birhanu/maze-planner/maze"
	"github.com/beka-birhanu/maze-planner/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	records map[uuid.UUID]*dmn.MazeRecord
	byIDs   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[uuid.UUID]*dmn.MazeRecord)}
}

func (f *fakeRepo) Save(record *dmn.MazeRecord) error {
	f.records[record.ID] = record
	return nil
}

func (f *fakeRepo) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	f.byIDs++
	record, ok := f.records[id]
	if !ok {
		return nil, i.ErrMazeNotFound
	}
	return record, nil
}

type fakeCache struct {
	records map[uuid.UUID]*dmn.MazeRecord
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{records: make(map[uuid.UUID]*dmn.MazeRecord)}
}

func (f *fakeCache) Set(_ context.Context, record *dmn.MazeRecord) error {
	f.sets++
	f.records[record.ID] = record
	return nil
}

func (f *fakeCache) Get(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, i.ErrMazeNotFound
	}
	return record, nil
}

type failingCache struct{}

func (failingCache) Set(context.Context, *dmn.MazeRecord) error { return errors.New("redis down") }
func (failingCache) Get(context.Context, uuid.UUID) (*dmn.MazeRecord, error) {
	return nil, errors.New("redis down")
}

func newTestService(t *testing.T, repo i.MazeRepo, cache i.MazeCache) *MazeService {
	t.Helper()
	svc, err := NewMazeService(&Config{
		Repo:   repo,
		Cache:  cache,
		Logger: log.New(io.Discard, "", 0),
	})
	assert.NoError(t, err)
	return svc
}

func TestMazeServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and caches a generated maze", func(t *testing.T) {
		repo := newFakeRepo()
		cache := newFakeCache()
		svc := newTestService(t, repo, cache)

		seed := int64(42)
		record, err := svc.Create(ctx, 15, 15, &seed, maze.ExitSideBottom, maze.DefaultLoopDensity)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.UUID{}, record.ID)
		assert.NoError(t, record.Grid.Validate())
		assert.Equal(t, maze.Road, record.Grid.At(record.Exit))
		assert.Contains(t, repo.records, record.ID)
		assert.Contains(t, cache.records, record.ID)
	})

	t.Run("seeded creations generate identical grids", func(t *testing.T) {
		svc := newTestService(t, newFakeRepo(), newFakeCache())

		seed := int64(7)
		first, err := svc.Create(ctx, 11, 11, &seed, maze.ExitSideRight, 0.1)
		assert.NoError(t, err)
		second, err := svc.Create(ctx, 11, 11, &seed, maze.ExitSideRight, 0.1)
		assert.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, first.Grid, second.Grid)
		assert.Equal(t, first.Exit, second.Exit)
	})

	t.Run("rejects small dimensions before any work", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(t, repo, newFakeCache())

		_, err := svc.Create(ctx, 4, 20, nil, maze.ExitSideRandom, 0)
		assert.ErrorIs(t, err, maze.ErrDimensionTooSmall)
		assert.Empty(t, repo.records)
	})

	t.Run("cache failures do not fail creation", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(t, repo, failingCache{})

		record, err := svc.Create(ctx, 9, 9, nil, maze.ExitSideRandom, 0)
		assert.NoError(t, err)
		assert.Contains(t, repo.records, record.ID)
	})
}

func TestMazeServiceGet(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the repository", func(t *testing.T) {
		repo := newFakeRepo()
		cache := newFakeCache()
		svc := newTestService(t, repo, cache)

		record, err := svc.Create(ctx, 9, 9, nil, maze.ExitSideRandom, 0)
		assert.NoError(t, err)

		repo.byIDs = 0
		got, err := svc.Get(ctx, record.ID)
		assert.NoError(t, err)
		assert.Equal(t, record.ID, got.ID)
		assert.Zero(t, repo.byIDs)
	})

	t.Run("cache miss falls through and backfills", func(t *testing.T) {
		repo := newFakeRepo()
		cache := newFakeCache()
		svc := newTestService(t, repo, cache)

		record, err := svc.Create(ctx, 9, 9, nil, maze.ExitSideRandom, 0)
		assert.NoError(t, err)

		delete(cache.records, record.ID)
		got, err := svc.Get(ctx, record.ID)
		assert.NoError(t, err)
		assert.Equal(t, record.ID, got.ID)
		assert.Contains(t, cache.records, record.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := newTestService(t, newFakeRepo(), newFakeCache())

		_, err := svc.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, i.ErrMazeNotFound)
	})
}

func TestMazeServiceNextStep(t *testing.T) {
	ctx := context.Background()

	grid, err := maze.FromInts([][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 0, 1},
		{1, 1, 1, 0, 1},
		{1, 1, 1, 1, 1},
	})
	assert.NoError(t, err)

	repo := newFakeRepo()
	record := &dmn.MazeRecord{ID: uuid.New(), Grid: grid, Exit: maze.Position{Row: 3, Col: 3}}
	assert.NoError(t, repo.Save(record))
	svc := newTestService(t, repo, newFakeCache())

	t.Run("returns the next cell", func(t *testing.T) {
		next, err := svc.NextStep(ctx, record.ID, maze.Position{Row: 1, Col: 1}, maze.Position{Row: 3, Col: 3})
		assert.NoError(t, err)
		assert.Equal(t, maze.Position{Row: 1, Col: 2}, next)
	})

	t.Run("rejects out-of-bounds coordinates", func(t *testing.T) {
		_, err := svc.NextStep(ctx, record.ID, maze.Position{Row: -1, Col: 0}, maze.Position{Row: 1, Col: 1})
		assert.ErrorIs(t, err, ErrOutOfBounds)

		_, err = svc.NextStep(ctx, record.ID, maze.Position{Row: 1, Col: 1}, maze.Position{Row: 5, Col: 5})
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("unknown maze", func(t *testing.T) {
		_, err := svc.NextStep(ctx, uuid.New(), maze.Position{Row: 1, Col: 1}, maze.Position{Row: 1, Col: 2})
		assert.ErrorIs(t, err, i.ErrMazeNotFound)
	})
}

func TestMazeServiceSampleRoads(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepo()
	svc := newTestService(t, repo, newFakeCache())
	record, err := svc.Create(ctx, 15, 15, nil, maze.ExitSideRandom, maze.DefaultLoopDensity)
	assert.NoError(t, err)

	t.Run("seeded draws are reproducible", func(t *testing.T) {
		seed := int64(3)
		first, err := svc.SampleRoads(ctx, record.ID, 5, &seed)
		assert.NoError(t, err)
		second, err := svc.SampleRoads(ctx, record.ID, 5, &seed)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, first, 5)
	})

	t.Run("non-positive count yields nothing", func(t *testing.T) {
		roads, err := svc.SampleRoads(ctx, record.ID, 0, nil)
		assert.NoError(t, err)
		assert.Empty(t, roads)
	})
}
