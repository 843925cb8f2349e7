package service

import (
	"io"
	"log"
	"testing"

	"github.com/abel-mekonn/pathviz-api/maze"
	"github.com/abel-mekonn/pathviz-api/pathfind"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestRunManager(t *testing.T) *RunManager {
	t.Helper()
	rm, err := NewRunManager(&Config{
		MazeWidth:  6,
		MazeHeight: 6,
		MazeSeed:   42,
		Logger:     log.New(io.Discard, "", 0),
	})
	assert.NoError(t, err)
	return rm
}

func TestNewRunManager(t *testing.T) {
	t.Run("generates the initial maze", func(t *testing.T) {
		rm := newTestRunManager(t)
		grid := rm.Maze()
		assert.Equal(t, 6, grid.Width())
		assert.Equal(t, 6, grid.Height())
		assert.Equal(t, 6*6-1, grid.OpenWallCount())

		start, end := rm.StartEnd()
		assert.Equal(t, maze.CellPosition{Row: 0, Col: 0}, start)
		assert.Equal(t, maze.CellPosition{Row: 5, Col: 5}, end)
	})

	t.Run("rejects invalid dimensions", func(t *testing.T) {
		_, err := NewRunManager(&Config{
			MazeWidth:  0,
			MazeHeight: 6,
			Logger:     log.New(io.Discard, "", 0),
		})
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	})
}

func TestStartRun(t *testing.T) {
	rm := newTestRunManager(t)

	t.Run("creates runs with distinct ids", func(t *testing.T) {
		first, err := rm.StartRun("bfs")
		assert.NoError(t, err)
		second, err := rm.StartRun("bfs")
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("rejects an unknown strategy", func(t *testing.T) {
		_, err := rm.StartRun("bellman-ford")
		assert.ErrorIs(t, err, pathfind.ErrInvalidStrategy)
	})
}

func TestStepRun(t *testing.T) {
	rm := newTestRunManager(t)

	t.Run("unknown id", func(t *testing.T) {
		_, err := rm.StepRun(uuid.New(), 1)
		assert.ErrorIs(t, err, ErrRunNotFound)
	})

	t.Run("advances by the requested expansions", func(t *testing.T) {
		id, err := rm.StartRun("bfs")
		assert.NoError(t, err)

		snapshot, err := rm.StepRun(id, 3)
		assert.NoError(t, err)
		assert.Len(t, snapshot.Settled, 3)
		assert.Equal(t, pathfind.StatusInProgress, snapshot.Status)
	})

	t.Run("runs to completion with a large step count", func(t *testing.T) {
		id, err := rm.StartRun("astar")
		assert.NoError(t, err)

		snapshot, err := rm.StepRun(id, 10_000)
		assert.NoError(t, err)
		assert.Equal(t, pathfind.StatusFound, snapshot.Status)

		path, err := rm.RunPath(id)
		assert.NoError(t, err)
		start, end := rm.StartEnd()
		assert.Equal(t, start, path[0])
		assert.Equal(t, end, path[len(path)-1])

		metrics, err := rm.RunMetrics(id)
		assert.NoError(t, err)
		assert.Equal(t, len(path)-1, metrics.PathLength)
	})
}

func TestRunState(t *testing.T) {
	rm := newTestRunManager(t)
	id, err := rm.StartRun("dijkstra")
	assert.NoError(t, err)

	before, err := rm.RunState(id)
	assert.NoError(t, err)
	assert.Empty(t, before.Settled)

	_, err = rm.StepRun(id, 2)
	assert.NoError(t, err)

	after, err := rm.RunState(id)
	assert.NoError(t, err)
	assert.Len(t, after.Settled, 2)
}

func TestRunPathBeforeFound(t *testing.T) {
	rm := newTestRunManager(t)
	id, err := rm.StartRun("dfs")
	assert.NoError(t, err)

	_, err = rm.RunPath(id)
	assert.ErrorIs(t, err, pathfind.ErrNoPathFound)
}

func TestRegenerateMaze(t *testing.T) {
	rm := newTestRunManager(t)

	t.Run("discards live runs", func(t *testing.T) {
		id, err := rm.StartRun("bfs")
		assert.NoError(t, err)

		assert.NoError(t, rm.RegenerateMaze(6, 6, 43))
		_, err = rm.RunState(id)
		assert.ErrorIs(t, err, ErrRunNotFound)
	})

	t.Run("rejects invalid dimensions and keeps the maze", func(t *testing.T) {
		before := rm.Maze().String()
		assert.ErrorIs(t, rm.RegenerateMaze(-1, 6, 1), maze.ErrInvalidDimensions)
		assert.Equal(t, before, rm.Maze().String())
	})

	t.Run("replaces the layout", func(t *testing.T) {
		assert.NoError(t, rm.RegenerateMaze(8, 5, 9))
		grid := rm.Maze()
		assert.Equal(t, 8, grid.Width())
		assert.Equal(t, 5, grid.Height())

		_, end := rm.StartEnd()
		assert.Equal(t, maze.CellPosition{Row: 4, Col: 7}, end)
	})
}
