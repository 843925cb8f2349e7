package pathfind

import (
	"fmt"
	"time"

	"github.com/abel-mekonn/pathviz-api/maze"
)

// StepResult reports the outcome of one Step call. Expanded is false when
// the removal was a no-op (a stale frontier entry for an already-settled
// cell, or a call after the run reached a terminal status), so callers can
// immediately step again without rendering anything.
type StepResult struct {
	Cell     maze.CellPosition
	Expanded bool
	Status   Status
}

// Engine drives a single search run over a grid. It performs no internal
// looping: every Step call is one unit of work, and pausing is simply the
// caller not stepping. An Engine must be discarded when its grid is
// regenerated.
type Engine struct {
	grid     *maze.Grid
	start    maze.CellPosition
	end      maze.CellPosition
	strategy Strategy

	frontier frontier
	parents  map[maze.CellPosition]maze.CellPosition
	costs    map[maze.CellPosition]int
	seen     map[maze.CellPosition]bool
	settled  map[maze.CellPosition]bool
	order    []maze.CellPosition
	seq      int

	status     Status
	startedAt  time.Time
	finishedAt time.Time
}

// NewEngine creates a run with the start cell enqueued at cost 0 and no
// parent. A run whose start equals its end is immediately terminal.
func NewEngine(grid *maze.Grid, start, end maze.CellPosition, strategy Strategy) (*Engine, error) {
	front, err := newFrontier(strategy)
	if err != nil {
		return nil, err
	}
	if !grid.InBounds(start) || !grid.InBounds(end) {
		return nil, fmt.Errorf("start %v or end %v outside %dx%d grid", start, end, grid.Width(), grid.Height())
	}

	e := &Engine{
		grid:      grid,
		start:     start,
		end:       end,
		strategy:  strategy,
		frontier:  front,
		parents:   make(map[maze.CellPosition]maze.CellPosition),
		costs:     map[maze.CellPosition]int{start: 0},
		seen:      map[maze.CellPosition]bool{start: true},
		settled:   make(map[maze.CellPosition]bool),
		status:    StatusInProgress,
		startedAt: time.Now(),
	}
	e.push(start, e.initialPriority())

	if start == end {
		e.settle(start)
		e.terminate(StatusFound)
	}
	return e, nil
}

func (e *Engine) initialPriority() int {
	if e.strategy == AStar {
		return manhattan(e.start, e.end)
	}
	return 0
}

func (e *Engine) push(pos maze.CellPosition, priority int) {
	e.frontier.push(&frontierItem{pos: pos, priority: priority, seq: e.seq})
	e.seq++
}

func (e *Engine) settle(pos maze.CellPosition) {
	e.settled[pos] = true
	e.order = append(e.order, pos)
}

func (e *Engine) terminate(status Status) {
	e.status = status
	e.finishedAt = time.Now()
}

// Step advances the run by one frontier removal.
//
// When the removed cell is new it is settled, checked against the end cell,
// and its open-wall neighbors are discovered: BFS and DFS record a parent on
// first sight only, Dijkstra and A* relax, overwriting the parent and cost
// of a neighbor rediscovered more cheaply and re-inserting it. A run that is
// already terminal returns its status unchanged.
func (e *Engine) Step() StepResult {
	if e.status != StatusInProgress {
		return StepResult{Status: e.status}
	}

	item, ok := e.frontier.pop()
	if !ok {
		// Cannot happen on a generated maze, which is fully connected.
		e.terminate(StatusExhausted)
		return StepResult{Status: e.status}
	}

	pos := item.pos
	if e.settled[pos] {
		// Stale entry left behind by a relaxation re-insert.
		return StepResult{Cell: pos, Expanded: false, Status: e.status}
	}
	e.settle(pos)

	if pos == e.end {
		e.terminate(StatusFound)
		return StepResult{Cell: pos, Expanded: true, Status: e.status}
	}

	for _, neighbor := range e.grid.NeighborsOpen(pos) {
		if e.settled[neighbor] {
			continue
		}
		switch e.strategy {
		case BFS, DFS:
			if e.seen[neighbor] {
				continue
			}
			e.seen[neighbor] = true
			e.parents[neighbor] = pos
			e.push(neighbor, 0)
		default:
			tentative := e.costs[pos] + 1
			if best, known := e.costs[neighbor]; known && tentative >= best {
				continue
			}
			e.costs[neighbor] = tentative
			e.parents[neighbor] = pos
			priority := tentative
			if e.strategy == AStar {
				priority += manhattan(neighbor, e.end)
			}
			e.push(neighbor, priority)
		}
	}

	return StepResult{Cell: pos, Expanded: true, Status: e.status}
}

// Status returns the run's current status.
func (e *Engine) Status() Status {
	return e.status
}

// Terminal reports whether the run has found the end or exhausted the
// frontier.
func (e *Engine) Terminal() bool {
	return e.status != StatusInProgress
}

// Start returns the run's start cell.
func (e *Engine) Start() maze.CellPosition {
	return e.start
}

// End returns the run's end cell.
func (e *Engine) End() maze.CellPosition {
	return e.end
}

// Strategy returns the strategy the run was created with.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// SettledOrder returns a copy of the settled cells in expansion order.
func (e *Engine) SettledOrder() []maze.CellPosition {
	order := make([]maze.CellPosition, len(e.order))
	copy(order, e.order)
	return order
}

// SettledCount returns the number of cells expanded so far.
func (e *Engine) SettledCount() int {
	return len(e.order)
}

// FrontierLen returns the current frontier size, counting stale entries.
func (e *Engine) FrontierLen() int {
	return e.frontier.len()
}
