package gridplanner

import (
	"github.com/pdrpinto/gridplanner/astar"
	"github.com/pdrpinto/gridplanner/grid"
)

// cellGraph adapts a grid and movement model to astar.Graph.
type cellGraph struct {
	grid     *grid.Grid
	movement grid.Movement
}

func (g cellGraph) Neighbors(c grid.Cell) []astar.Neighbor[grid.Cell] {
	steps := g.movement.Neighbors(g.grid, c)
	out := make([]astar.Neighbor[grid.Cell], len(steps))
	for i, step := range steps {
		out[i] = astar.Neighbor[grid.Cell]{ID: step.Cell, Cost: step.Cost}
	}
	return out
}
