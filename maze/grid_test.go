package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid(t *testing.T) {
	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -3}, {0, 0}} {
			_, err := NewGrid(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		}
	})

	t.Run("starts fully walled", func(t *testing.T) {
		grid, err := NewGrid(4, 3)
		assert.NoError(t, err)
		assert.Equal(t, 4, grid.Width())
		assert.Equal(t, 3, grid.Height())
		assert.Equal(t, 0, grid.OpenWallCount())
		for row := 0; row < 3; row++ {
			for col := 0; col < 4; col++ {
				assert.Empty(t, grid.NeighborsOpen(CellPosition{Row: row, Col: col}))
			}
		}
	})
}

func TestNeighborsAll(t *testing.T) {
	grid, err := NewGrid(3, 3)
	assert.NoError(t, err)

	t.Run("corner has two neighbors", func(t *testing.T) {
		assert.Len(t, grid.NeighborsAll(CellPosition{Row: 0, Col: 0}), 2)
	})

	t.Run("edge has three neighbors", func(t *testing.T) {
		assert.Len(t, grid.NeighborsAll(CellPosition{Row: 0, Col: 1}), 3)
	})

	t.Run("center has four neighbors", func(t *testing.T) {
		assert.Len(t, grid.NeighborsAll(CellPosition{Row: 1, Col: 1}), 4)
	})
}

func TestOpenWall(t *testing.T) {
	t.Run("opens both sides", func(t *testing.T) {
		grid, err := NewGrid(3, 3)
		assert.NoError(t, err)

		a := CellPosition{Row: 1, Col: 1}
		b := CellPosition{Row: 1, Col: 2}
		grid.OpenWall(a, b)

		assert.True(t, grid.Open(a, b))
		assert.True(t, grid.Open(b, a))
		assert.False(t, grid.CellAt(a).HasEastWall())
		assert.False(t, grid.CellAt(b).HasWestWall())
		assert.Equal(t, []CellPosition{b}, grid.NeighborsOpen(a))
		assert.Equal(t, []CellPosition{a}, grid.NeighborsOpen(b))
	})

	t.Run("no-op for non-adjacent cells", func(t *testing.T) {
		grid, err := NewGrid(3, 3)
		assert.NoError(t, err)

		grid.OpenWall(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 2, Col: 2})
		grid.OpenWall(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 1, Col: 1})
		assert.Equal(t, 0, grid.OpenWallCount())
	})

	t.Run("no-op for out-of-bounds cells", func(t *testing.T) {
		grid, err := NewGrid(3, 3)
		assert.NoError(t, err)

		grid.OpenWall(CellPosition{Row: 0, Col: 0}, CellPosition{Row: -1, Col: 0})
		grid.OpenWall(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: -1})
		assert.Equal(t, 0, grid.OpenWallCount())
	})
}

func TestReset(t *testing.T) {
	grid, err := NewGrid(4, 4)
	assert.NoError(t, err)

	Generate(grid, 7)
	assert.NotZero(t, grid.OpenWallCount())

	grid.Reset()
	assert.Equal(t, 0, grid.OpenWallCount())
}
