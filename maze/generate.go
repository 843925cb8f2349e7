package maze

import "math/rand"

// Generate carves a perfect maze into the grid using recursive backtracking
// and returns the same grid. Any walls opened by a previous generation are
// closed first, so the result depends only on the dimensions and the seed:
// generating twice with the same seed yields an identical layout.
//
// The carved passages form a spanning tree over the grid graph, so every
// cell is reachable from every other cell by exactly one simple path.
func Generate(g *Grid, seed int64) *Grid {
	g.Reset()
	rng := rand.New(rand.NewSource(seed))

	start := CellPosition{Row: 0, Col: 0}
	visited := make(map[CellPosition]struct{}, g.width*g.height)
	visited[start] = struct{}{}

	stack := []CellPosition{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var candidates []CellPosition
		for _, neighbor := range g.NeighborsAll(current) {
			if _, seen := visited[neighbor]; !seen {
				candidates = append(candidates, neighbor)
			}
		}

		if len(candidates) == 0 {
			// Dead end, backtrack to the most recent cell with
			// unvisited neighbors.
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		g.OpenWall(current, next)
		visited[next] = struct{}{}
		stack = append(stack, next)
	}

	return g
}
