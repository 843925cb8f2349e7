package i

import (
	"github.com/abel-mekonn/pathviz-api/maze"
	"github.com/abel-mekonn/pathviz-api/pathfind"
	"github.com/google/uuid"
)

// RunSnapshot is the view of a run handed to the API layer: enough to draw
// the exploration without exposing the engine itself.
type RunSnapshot struct {
	ID           uuid.UUID
	Strategy     pathfind.Strategy
	Status       pathfind.Status
	Settled      []maze.CellPosition
	FrontierSize int
}

// RunManager owns the current maze and the live search runs, and drives the
// run engines on behalf of the driver layer.
type RunManager interface {
	// RegenerateMaze replaces the maze wholesale and discards every live
	// run, since their state refers to the previous wall layout.
	RegenerateMaze(width, height int, seed int64) error

	// Maze returns the current grid.
	Maze() *maze.Grid

	// StartEnd returns the fixed start and end cells of the current maze.
	StartEnd() (maze.CellPosition, maze.CellPosition)

	// StartRun creates a run for the given strategy tag.
	StartRun(strategy string) (uuid.UUID, error)

	// StepRun advances a run by up to count real expansions and returns
	// the resulting snapshot.
	StepRun(id uuid.UUID, count int) (RunSnapshot, error)

	// RunState returns a run's snapshot without advancing it.
	RunState(id uuid.UUID) (RunSnapshot, error)

	// RunPath reconstructs a run's solution path.
	RunPath(id uuid.UUID) ([]maze.CellPosition, error)

	// RunMetrics returns a run's metrics snapshot.
	RunMetrics(id uuid.UUID) (pathfind.Metrics, error)
}
