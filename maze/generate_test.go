package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// floodFill counts the cells reachable from (0,0) through open walls.
func floodFill(g *Grid) int {
	start := CellPosition{Row: 0, Col: 0}
	visited := map[CellPosition]struct{}{start: {}}
	queue := []CellPosition{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range g.NeighborsOpen(current) {
			if _, seen := visited[neighbor]; !seen {
				visited[neighbor] = struct{}{}
				queue = append(queue, neighbor)
			}
		}
	}
	return len(visited)
}

func TestGenerate(t *testing.T) {
	t.Run("produces a spanning tree", func(t *testing.T) {
		for _, seed := range []int64{1, 2, 42, 1234, 99999} {
			grid, err := NewGrid(9, 7)
			assert.NoError(t, err)

			Generate(grid, seed)
			assert.Equal(t, 9*7-1, grid.OpenWallCount(), "seed %d", seed)
			assert.Equal(t, 9*7, floodFill(grid), "seed %d", seed)
		}
	})

	t.Run("same seed yields identical layout", func(t *testing.T) {
		first, err := NewGrid(8, 8)
		assert.NoError(t, err)
		second, err := NewGrid(8, 8)
		assert.NoError(t, err)

		Generate(first, 42)
		Generate(second, 42)
		assert.Equal(t, first.String(), second.String())
	})

	t.Run("regeneration on the same grid is reproducible", func(t *testing.T) {
		grid, err := NewGrid(6, 6)
		assert.NoError(t, err)

		Generate(grid, 5)
		layout := grid.String()

		Generate(grid, 17)
		Generate(grid, 5)
		assert.Equal(t, layout, grid.String())
	})

	t.Run("handles a single-cell grid", func(t *testing.T) {
		grid, err := NewGrid(1, 1)
		assert.NoError(t, err)

		Generate(grid, 3)
		assert.Equal(t, 0, grid.OpenWallCount())
	})
}
