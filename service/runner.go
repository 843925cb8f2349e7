// Package service hosts the RunManager, which owns the current maze and the
// registry of live search runs.
package service

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/abel-mekonn/pathviz-api/config"
	"github.com/abel-mekonn/pathviz-api/maze"
	"github.com/abel-mekonn/pathviz-api/pathfind"
	"github.com/abel-mekonn/pathviz-api/service/i"
	"github.com/google/uuid"
)

// ErrRunNotFound is returned for run IDs with no live run behind them,
// including runs discarded by a maze regeneration.
var ErrRunNotFound = errors.New("no run with that id")

// RunManager implements i.RunManager. All access to the grid and the run
// registry goes through its lock; engines themselves are single-threaded
// and only ever touched while the lock is held.
type RunManager struct {
	grid   *maze.Grid
	start  maze.CellPosition
	end    maze.CellPosition
	runs   map[uuid.UUID]*pathfind.Engine
	logger *log.Logger
	sync.RWMutex
}

// Config holds the settings for creating a RunManager.
type Config struct {
	MazeWidth  int
	MazeHeight int
	MazeSeed   int64 // non-positive means derive from the clock
	Logger     *log.Logger
}

// NewRunManager creates a RunManager with a freshly generated maze.
func NewRunManager(c *Config) (*RunManager, error) {
	rm := &RunManager{
		runs:   make(map[uuid.UUID]*pathfind.Engine),
		logger: c.Logger,
	}
	if err := rm.RegenerateMaze(c.MazeWidth, c.MazeHeight, c.MazeSeed); err != nil {
		return nil, err
	}
	return rm, nil
}

// RegenerateMaze replaces the grid and drops every live run. In-flight run
// state must never outlive the walls it was computed against.
func (rm *RunManager) RegenerateMaze(width, height int, seed int64) error {
	grid, err := maze.NewGrid(width, height)
	if err != nil {
		return err
	}
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	maze.Generate(grid, seed)

	rm.Lock()
	defer rm.Unlock()
	dropped := len(rm.runs)
	rm.grid = grid
	rm.start = maze.CellPosition{Row: 0, Col: 0}
	rm.end = maze.CellPosition{Row: height - 1, Col: width - 1}
	rm.runs = make(map[uuid.UUID]*pathfind.Engine)
	rm.logger.Printf("%s[INFO]%s generated %dx%d maze with seed %d, dropped %d runs", config.LogInfoColor, config.LogColorReset, width, height, seed, dropped)
	return nil
}

// Maze returns the current grid.
func (rm *RunManager) Maze() *maze.Grid {
	rm.RLock()
	defer rm.RUnlock()
	return rm.grid
}

// StartEnd returns the fixed start and end cells of the current maze.
func (rm *RunManager) StartEnd() (maze.CellPosition, maze.CellPosition) {
	rm.RLock()
	defer rm.RUnlock()
	return rm.start, rm.end
}

// StartRun creates an engine for the given strategy tag over the current
// maze and registers it under a fresh ID.
func (rm *RunManager) StartRun(strategy string) (uuid.UUID, error) {
	parsed, err := pathfind.ParseStrategy(strategy)
	if err != nil {
		return uuid.Nil, err
	}

	rm.Lock()
	defer rm.Unlock()
	engine, err := pathfind.NewEngine(rm.grid, rm.start, rm.end, parsed)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	for {
		if _, taken := rm.runs[id]; !taken {
			break
		}
		id = uuid.New()
	}
	rm.runs[id] = engine
	rm.logger.Printf("%s[INFO]%s started %s run %s", config.LogInfoColor, config.LogColorReset, parsed, id)
	return id, nil
}

// StepRun advances a run by up to count real expansions. No-op expansions
// (stale frontier entries) are stepped through without counting; a run that
// reaches a terminal status stops early.
func (rm *RunManager) StepRun(id uuid.UUID, count int) (i.RunSnapshot, error) {
	rm.Lock()
	defer rm.Unlock()
	engine, ok := rm.runs[id]
	if !ok {
		return i.RunSnapshot{}, ErrRunNotFound
	}

	expanded := 0
	for expanded < count && !engine.Terminal() {
		if result := engine.Step(); result.Expanded {
			expanded++
		}
	}
	if engine.Terminal() {
		rm.logger.Printf("%s[INFO]%s run %s finished: %s after %d expansions", config.LogInfoColor, config.LogColorReset, id, engine.Status(), engine.SettledCount())
	}
	return snapshot(id, engine), nil
}

// RunState returns a run's snapshot without advancing it.
func (rm *RunManager) RunState(id uuid.UUID) (i.RunSnapshot, error) {
	rm.RLock()
	defer rm.RUnlock()
	engine, ok := rm.runs[id]
	if !ok {
		return i.RunSnapshot{}, ErrRunNotFound
	}
	return snapshot(id, engine), nil
}

// RunPath reconstructs a run's solution path.
func (rm *RunManager) RunPath(id uuid.UUID) ([]maze.CellPosition, error) {
	rm.RLock()
	defer rm.RUnlock()
	engine, ok := rm.runs[id]
	if !ok {
		return nil, ErrRunNotFound
	}
	return engine.Path()
}

// RunMetrics returns a run's metrics snapshot.
func (rm *RunManager) RunMetrics(id uuid.UUID) (pathfind.Metrics, error) {
	rm.RLock()
	defer rm.RUnlock()
	engine, ok := rm.runs[id]
	if !ok {
		return pathfind.Metrics{}, ErrRunNotFound
	}
	return pathfind.Snapshot(engine), nil
}

func snapshot(id uuid.UUID, engine *pathfind.Engine) i.RunSnapshot {
	return i.RunSnapshot{
		ID:           id,
		Strategy:     engine.Strategy(),
		Status:       engine.Status(),
		Settled:      engine.SettledOrder(),
		FrontierSize: engine.FrontierLen(),
	}
}
