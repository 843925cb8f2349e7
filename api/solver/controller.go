package solverapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/abel-mekonn/pathviz-api/maze"
	"github.com/abel-mekonn/pathviz-api/pathfind"
	"github.com/abel-mekonn/pathviz-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SolverController exposes maze generation and search runs over REST.
type SolverController struct {
	runManager i.RunManager
	defaults   MazeDefaults
}

// MazeDefaults fills omitted fields of a maze regeneration request.
type MazeDefaults struct {
	Width  int
	Height int
}

// NewSolverController initializes a SolverController.
func NewSolverController(rm i.RunManager, defaults MazeDefaults) (*SolverController, error) {
	return &SolverController{
		runManager: rm,
		defaults:   defaults,
	}, nil
}

// Register mounts the maze and run routes.
func (sc *SolverController) Register(route *gin.RouterGroup) {
	mazeRoutes := route.Group("/maze")
	{
		mazeRoutes.GET("/", sc.mazeLayout)
		mazeRoutes.POST("/", sc.regenerate)
	}
	runRoutes := route.Group("/runs")
	{
		runRoutes.POST("/", sc.startRun)
		runRoutes.POST("/:ID/step", sc.stepRun)
		runRoutes.GET("/:ID", sc.runState)
		runRoutes.GET("/:ID/path", sc.runPath)
		runRoutes.GET("/:ID/metrics", sc.runMetrics)
	}
}

// regenerate handles maze regeneration requests.
func (sc *SolverController) regenerate(ctx *gin.Context) {
	var request RegenerateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Width == 0 {
		request.Width = sc.defaults.Width
	}
	if request.Height == 0 {
		request.Height = sc.defaults.Height
	}

	if err := sc.runManager.RegenerateMaze(request.Width, request.Height, request.Seed); err != nil {
		if errors.Is(err, maze.ErrInvalidDimensions) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while regenerating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, sc.mazeResponse())
}

// mazeLayout returns the current wall layout.
func (sc *SolverController) mazeLayout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, sc.mazeResponse())
}

func (sc *SolverController) mazeResponse() MazeResponse {
	grid := sc.runManager.Maze()
	start, end := sc.runManager.StartEnd()

	cells := make([][]CellWallsResponse, grid.Height())
	for row := range cells {
		cells[row] = make([]CellWallsResponse, grid.Width())
		for col := range cells[row] {
			cell := grid.CellAt(maze.CellPosition{Row: row, Col: col})
			cells[row][col] = CellWallsResponse{
				North: cell.HasNorthWall(),
				South: cell.HasSouthWall(),
				East:  cell.HasEastWall(),
				West:  cell.HasWestWall(),
			}
		}
	}

	return MazeResponse{
		Width:  grid.Width(),
		Height: grid.Height(),
		Start:  toCellResponse(start),
		End:    toCellResponse(end),
		Cells:  cells,
		ASCII:  grid.String(),
	}
}

// startRun handles run creation requests.
func (sc *SolverController) startRun(ctx *gin.Context) {
	var request StartRunRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := sc.runManager.StartRun(request.Strategy)
	if err != nil {
		if errors.Is(err, pathfind.ErrInvalidStrategy) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while starting run"})
		return
	}

	ctx.JSON(http.StatusCreated, StartRunResponse{ID: id})
}

// stepRun advances a run by the requested number of expansions.
func (sc *SolverController) stepRun(ctx *gin.Context) {
	id, ok := sc.runID(ctx)
	if !ok {
		return
	}

	count := 1
	if raw, present := ctx.GetQuery("count"); present {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "count must be a positive integer"})
			return
		}
		count = parsed
	}

	snapshot, err := sc.runManager.StepRun(id, count)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, toRunSnapshotResponse(snapshot))
}

// runState returns a run's snapshot without stepping it.
func (sc *SolverController) runState(ctx *gin.Context) {
	id, ok := sc.runID(ctx)
	if !ok {
		return
	}

	snapshot, err := sc.runManager.RunState(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, toRunSnapshotResponse(snapshot))
}

// runPath returns a run's reconstructed solution path.
func (sc *SolverController) runPath(ctx *gin.Context) {
	id, ok := sc.runID(ctx)
	if !ok {
		return
	}

	path, err := sc.runManager.RunPath(id)
	if err != nil {
		if errors.Is(err, pathfind.ErrNoPathFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "no path"})
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, PathResponse{Path: toCellResponses(path), Length: len(path) - 1})
}

// runMetrics returns a run's metrics snapshot.
func (sc *SolverController) runMetrics(ctx *gin.Context) {
	id, ok := sc.runID(ctx)
	if !ok {
		return
	}

	metrics, err := sc.runManager.RunMetrics(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, metrics)
}

func (sc *SolverController) runID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return uuid.Nil, false
	}
	return id, true
}

func toRunSnapshotResponse(snapshot i.RunSnapshot) RunSnapshotResponse {
	return RunSnapshotResponse{
		ID:           snapshot.ID,
		Strategy:     string(snapshot.Strategy),
		Status:       snapshot.Status.String(),
		Settled:      toCellResponses(snapshot.Settled),
		FrontierSize: snapshot.FrontierSize,
	}
}
