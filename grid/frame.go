package grid

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// DefaultResolution is the cell edge in meters, matched to an RTK fix (about 2 cm).
const DefaultResolution = 0.02

// Frame maps metric positions onto a grid. Origin is the minimum corner of
// cell (0,0); columns grow along +X and rows along +Y. A Resolution that is
// not a positive number means DefaultResolution.
type Frame struct {
	Origin     r2.Point
	Resolution float64
}

// NewFrame returns a frame with the given origin and resolution in meters.
func NewFrame(origin r2.Point, resolution float64) (Frame, error) {
	if !(resolution > 0) || math.IsInf(resolution, 0) {
		return Frame{}, errors.Errorf("resolution must be a positive number of meters, got %v", resolution)
	}
	return Frame{Origin: origin, Resolution: resolution}, nil
}

func (f Frame) resolution() float64 {
	if f.Resolution > 0 && !math.IsInf(f.Resolution, 0) {
		return f.Resolution
	}
	return DefaultResolution
}

// CellOf returns the cell containing p. It may lie outside any given grid.
func (f Frame) CellOf(p r2.Point) Cell {
	local := p.Sub(f.Origin).Mul(1 / f.resolution())
	return Cell{Row: int(math.Floor(local.Y)), Col: int(math.Floor(local.X))}
}

// Center returns the metric centre of c.
func (f Frame) Center(c Cell) r2.Point {
	return f.Origin.Add(r2.Point{X: float64(c.Col) + 0.5, Y: float64(c.Row) + 0.5}.Mul(f.resolution()))
}

// Waypoints converts a path to the metric centres of its cells.
func (f Frame) Waypoints(p Path) []r2.Point {
	points := make([]r2.Point, len(p))
	for i, c := range p {
		points[i] = f.Center(c)
	}
	return points
}

// Meters converts a path cost in cell units to meters.
func (f Frame) Meters(cost float64) float64 {
	return cost * f.resolution()
}
