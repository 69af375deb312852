// Package grid models a 2D occupancy grid for a ground vehicle: cells,
// obstacles, movement models and heuristics, paths, and the collaborators
// that build grids from map files and render planned paths.
package grid
