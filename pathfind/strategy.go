/*
Package pathfind implements steppable graph searches over a maze grid.

An Engine owns the state of one search run: the frontier, the parent links
and the best-known costs. Each call to Step performs exactly one frontier
removal, so a caller can interleave search progress with rendering. The four
strategies share the same Step logic and differ only in frontier ordering.
*/
package pathfind

import (
	"errors"
	"fmt"

	"github.com/abel-mekonn/pathviz-api/maze"
)

var (
	// ErrInvalidStrategy is returned for an unrecognized strategy tag.
	ErrInvalidStrategy = errors.New("unrecognized search strategy")

	// ErrNoPathFound is returned when path reconstruction is attempted
	// without a recorded route to the end cell.
	ErrNoPathFound = errors.New("no path found")
)

// Strategy selects the frontier ordering of a search run.
type Strategy string

const (
	BFS      Strategy = "bfs"      // first-in first-out frontier
	DFS      Strategy = "dfs"      // last-in first-out frontier
	Dijkstra Strategy = "dijkstra" // minimum accumulated cost
	AStar    Strategy = "astar"    // minimum accumulated cost plus Manhattan heuristic
)

// ParseStrategy maps a strategy tag to its Strategy value. The "a*" spelling
// is accepted as an alias for astar.
func ParseStrategy(tag string) (Strategy, error) {
	switch Strategy(tag) {
	case BFS, DFS, Dijkstra, AStar:
		return Strategy(tag), nil
	case "a*":
		return AStar, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, tag)
	}
}

// Status is the lifecycle state of a search run.
type Status uint8

const (
	StatusInProgress Status = iota // the frontier still holds candidates
	StatusFound                    // the end cell has been settled
	StatusExhausted                // the frontier drained without reaching the end
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("unknown status: %d", uint8(s))
}

// manhattan returns |Δrow| + |Δcol|, an admissible heuristic on a unit-cost
// grid with axis moves only.
func manhattan(a, b maze.CellPosition) int {
	dRow := a.Row - b.Row
	if dRow < 0 {
		dRow = -dRow
	}
	dCol := a.Col - b.Col
	if dCol < 0 {
		dCol = -dCol
	}
	return dRow + dCol
}
