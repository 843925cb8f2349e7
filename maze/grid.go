/*
Package maze provides tools for creating and managing rectangular mazes.

It defines the `Grid` structure, composed of `Cell` objects that record the
wall state toward each of the four neighboring cells. Walls are always opened
symmetrically, so a passage seen from one side exists from the other.

The package includes random maze generation with recursive backtracking,
neighbor queries for both the raw grid graph and the carved passages, and
ASCII visualization of the maze.
*/
package maze

import (
	"errors"
	"strings"
)

// ErrInvalidDimensions is returned when a grid is requested with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("invalid maze dimensions")

// direction is a row/column delta. The slice order (North, South, East,
// West) is fixed so that neighbor queries, and therefore seeded generation,
// are deterministic.
type direction struct {
	dRow int
	dCol int
}

var directions = []direction{
	{dRow: -1, dCol: 0},
	{dRow: 1, dCol: 0},
	{dRow: 0, dCol: 1},
	{dRow: 0, dCol: -1},
}

// Grid is a fixed-size rectangular maze. Dimensions are set at construction
// and never change; regeneration reuses the same cells with all walls reset.
type Grid struct {
	width  int       // Width of the maze (number of columns)
	height int       // Height of the maze (number of rows)
	cells  [][]*Cell // 2D grid of cells forming the maze
}

// NewGrid initializes a grid of the given dimensions with every wall closed.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]*Cell, height)
	for i := range cells {
		cells[i] = make([]*Cell, width)
		for j := range cells[i] {
			cells[i][j] = &Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid.
func (g *Grid) Height() int {
	return g.height
}

// CellAt returns the cell at the given position, or nil when out of bounds.
func (g *Grid) CellAt(pos CellPosition) *Cell {
	if !g.InBounds(pos) {
		return nil
	}
	return g.cells[pos.Row][pos.Col]
}

// InBounds reports whether the position lies within the grid.
func (g *Grid) InBounds(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.height && pos.Col >= 0 && pos.Col < g.width
}

// NeighborsAll returns the up-to-four grid-adjacent positions regardless of
// wall state. The generator walks this raw adjacency.
func (g *Grid) NeighborsAll(pos CellPosition) []CellPosition {
	var result []CellPosition
	for _, d := range directions {
		neighbor := CellPosition{Row: pos.Row + d.dRow, Col: pos.Col + d.dCol}
		if g.InBounds(neighbor) {
			result = append(result, neighbor)
		}
	}
	return result
}

// NeighborsOpen returns the grid-adjacent positions reachable through an
// open wall. Searches walk this carved adjacency.
func (g *Grid) NeighborsOpen(pos CellPosition) []CellPosition {
	var result []CellPosition
	for _, d := range directions {
		neighbor := CellPosition{Row: pos.Row + d.dRow, Col: pos.Col + d.dCol}
		if g.InBounds(neighbor) && g.Open(pos, neighbor) {
			result = append(result, neighbor)
		}
	}
	return result
}

// Open reports whether the wall between two grid-adjacent cells is open.
// Non-adjacent or out-of-bounds pairs are never open.
func (g *Grid) Open(a, b CellPosition) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	switch {
	case b.Row == a.Row-1 && b.Col == a.Col:
		return !g.cells[a.Row][a.Col].NorthWall && !g.cells[b.Row][b.Col].SouthWall
	case b.Row == a.Row+1 && b.Col == a.Col:
		return !g.cells[a.Row][a.Col].SouthWall && !g.cells[b.Row][b.Col].NorthWall
	case b.Row == a.Row && b.Col == a.Col+1:
		return !g.cells[a.Row][a.Col].EastWall && !g.cells[b.Row][b.Col].WestWall
	case b.Row == a.Row && b.Col == a.Col-1:
		return !g.cells[a.Row][a.Col].WestWall && !g.cells[b.Row][b.Col].EastWall
	default:
		return false
	}
}

// OpenWall removes the wall between two adjacent cells on both sides. It is
// a no-op when the cells are not grid-adjacent.
func (g *Grid) OpenWall(a, b CellPosition) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return
	}
	switch {
	case b.Row == a.Row-1 && b.Col == a.Col:
		g.cells[a.Row][a.Col].NorthWall = false
		g.cells[b.Row][b.Col].SouthWall = false
	case b.Row == a.Row+1 && b.Col == a.Col:
		g.cells[a.Row][a.Col].SouthWall = false
		g.cells[b.Row][b.Col].NorthWall = false
	case b.Row == a.Row && b.Col == a.Col+1:
		g.cells[a.Row][a.Col].EastWall = false
		g.cells[b.Row][b.Col].WestWall = false
	case b.Row == a.Row && b.Col == a.Col-1:
		g.cells[a.Row][a.Col].WestWall = false
		g.cells[b.Row][b.Col].EastWall = false
	}
}

// Reset closes every wall, returning the grid to its pre-generation state.
func (g *Grid) Reset() {
	for _, row := range g.cells {
		for _, cell := range row {
			cell.NorthWall = true
			cell.SouthWall = true
			cell.EastWall = true
			cell.WestWall = true
		}
	}
}

// OpenWallCount returns the number of open walls, counting each shared wall
// once. A perfect maze on this grid has exactly width*height - 1.
func (g *Grid) OpenWallCount() int {
	count := 0
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if col+1 < g.width && g.Open(CellPosition{Row: row, Col: col}, CellPosition{Row: row, Col: col + 1}) {
				count++
			}
			if row+1 < g.height && g.Open(CellPosition{Row: row, Col: col}, CellPosition{Row: row + 1, Col: col}) {
				count++
			}
		}
	}
	return count
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", g.width) + "\n"

	for row := 0; row < g.height; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < g.width; col++ {
			cell := g.cells[row][col]
			cellRow += "   "

			// Add east wall or space
			if cell.EastWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output += cellRow + "\n"

		// Wall rows
		wallRow := "+"
		for col := 0; col < g.width; col++ {
			cell := g.cells[row][col]

			// Add south wall or space
			if cell.SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output += wallRow + "\n"
	}

	return output
}
