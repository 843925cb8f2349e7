package pathfind

import (
	"fmt"

	"github.com/abel-mekonn/pathviz-api/maze"
)

// Path walks the recorded parent links from the end cell back to the start
// and returns the ordered start..end sequence. It fails with ErrNoPathFound
// when the end cell was never discovered. Parent links are only ever set
// across open walls, but the chain is verified anyway before returning.
func (e *Engine) Path() ([]maze.CellPosition, error) {
	if e.start == e.end {
		return []maze.CellPosition{e.start}, nil
	}
	if _, found := e.parents[e.end]; !found {
		return nil, ErrNoPathFound
	}

	path := []maze.CellPosition{e.end}
	current := e.end
	for current != e.start {
		previous, found := e.parents[current]
		if !found {
			return nil, fmt.Errorf("%w: parent chain broken at %v", ErrNoPathFound, current)
		}
		path = append(path, previous)
		current = previous
	}

	// reverse into start..end order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	for i := 1; i < len(path); i++ {
		if !e.grid.Open(path[i-1], path[i]) {
			return nil, fmt.Errorf("reconstructed path crosses a closed wall between %v and %v", path[i-1], path[i])
		}
	}
	return path, nil
}
