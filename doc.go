// Package gridplanner finds minimum-cost paths for a ground vehicle over a 2D
// occupancy grid.
//
// It exposes two main entry points:
//
//   - FindPath / Planner.FindPath: validate the endpoints, run A* and return the path.
//   - Planner.Stepper: iterate the same search one expansion at a time to drive UIs.
//
// Movement is 8-connected by default with unit orthogonal and √2 diagonal
// steps; WithConnectivity(grid.FourConnected) restricts it to orthogonal
// unit steps. An unreachable goal yields an empty path and a nil error. Only
// bad endpoints are reported as errors, as ErrInvalidInput.
//
// A Planner holds no per-search state and never mutates the grid, so it can
// be shared between goroutines planning over the same grid.
package gridplanner
