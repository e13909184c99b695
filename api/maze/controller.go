// Package mazeapi handles maze generation and step planning requests.
package mazeapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/maze-planner/maze"
	"github.com/beka-birhanu/maze-planner/service"
	"github.com/beka-birhanu/maze-planner/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController manages maze generation and planning operations.
type MazeController struct {
	planner i.MazePlanner
}

// NewMazeController initializes a MazeController.
func NewMazeController(p i.MazePlanner) (*MazeController, error) {
	if p == nil {
		return nil, errors.New("maze controller requires a planner")
	}
	return &MazeController{
		planner: p,
	}, nil
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.create)
		mazes.GET("/:ID", mc.get)
		mazes.POST("/:ID/next-step", mc.nextStep)
		mazes.GET("/:ID/roads", mc.roads)
	}
}

// create handles maze generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	height, width := maze.DefaultSize, maze.DefaultSize
	if request.Height != nil {
		height = *request.Height
	}
	if request.Width != nil {
		width = *request.Width
	}
	loopDensity := maze.DefaultLoopDensity
	if request.LoopDensity != nil {
		loopDensity = *request.LoopDensity
	}

	side, err := maze.ParseExitSide(request.ExitSide)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.planner.Create(ctx, height, width, request.Seed, side, loopDensity)
	if err != nil {
		if errors.Is(err, maze.ErrDimensionTooSmall) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, &MazeResponse{
		ID:        record.ID,
		Exit:      record.Exit,
		Grid:      record.Grid,
		CreatedAt: record.CreatedAt,
	})
}

// get retrieves a stored maze.
func (mc *MazeController) get(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	record, err := mc.planner.Get(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}

	ctx.JSON(http.StatusOK, &MazeResponse{
		ID:        record.ID,
		Exit:      record.Exit,
		Grid:      record.Grid,
		CreatedAt: record.CreatedAt,
	})
}

// nextStep computes an agent's next move on a stored maze.
func (mc *MazeController) nextStep(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	var request NextStepRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from := maze.Position{Row: *request.From.Row, Col: *request.From.Col}
	to := maze.Position{Row: *request.To.Row, Col: *request.To.Col}

	next, err := mc.planner.NextStep(ctx, id, from, to)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOutOfBounds):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, i.ErrMazeNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while planning step"})
		}
		return
	}

	ctx.JSON(http.StatusOK, &NextStepResponse{Next: next})
}

// roads samples road cells from a stored maze.
func (mc *MazeController) roads(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	count, err := strconv.Atoi(ctx.DefaultQuery("count", "1"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "count must be an integer"})
		return
	}

	var seed *int64
	if seedStr, exists := ctx.GetQuery("seed"); exists {
		value, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
			return
		}
		seed = &value
	}

	roads, err := mc.planner.SampleRoads(ctx, id, count, seed)
	if err != nil {
		if errors.Is(err, i.ErrMazeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while sampling roads"})
		return
	}

	ctx.JSON(http.StatusOK, &RoadsResponse{Roads: roads})
}

// mazeID parses the maze ID path parameter, writing a 400 response when it
// is not a valid UUID.
func mazeID(ctx *gin.Context) (uuid.UUID, bool) {
	idString := ctx.Params.ByName("ID")
	id, err := uuid.Parse(idString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.UUID{}, false
	}
	return id, true
}
