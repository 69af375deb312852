package grid

import (
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func TestFrame(t *testing.T) {
	_, err := NewFrame(r2.Point{}, 0)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewFrame(r2.Point{}, -0.5)
	test.That(t, err, test.ShouldNotBeNil)

	frame, err := NewFrame(r2.Point{X: 10, Y: -2}, DefaultResolution)
	test.That(t, err, test.ShouldBeNil)

	center := frame.Center(Cell{Row: 3, Col: 7})
	test.That(t, center.X, test.ShouldAlmostEqual, 10.15)
	test.That(t, center.Y, test.ShouldAlmostEqual, -1.93)
	test.That(t, frame.CellOf(center), test.ShouldResemble, Cell{Row: 3, Col: 7})

	// just inside the cell's minimum corner
	test.That(t, frame.CellOf(r2.Point{X: 10.1401, Y: -1.9399}), test.ShouldResemble, Cell{Row: 3, Col: 7})
	test.That(t, frame.CellOf(r2.Point{X: 9.99, Y: -2.01}), test.ShouldResemble, Cell{Row: -1, Col: -1})

	points := frame.Waypoints(Path{{0, 0}, {1, 1}})
	test.That(t, points, test.ShouldHaveLength, 2)
	test.That(t, points[1].X, test.ShouldAlmostEqual, 10.03)
	test.That(t, points[1].Y, test.ShouldAlmostEqual, -1.97)
	test.That(t, frame.Meters(50), test.ShouldAlmostEqual, 1.0)

	var zero Frame
	test.That(t, zero.CellOf(r2.Point{X: 0.05, Y: 0.01}), test.ShouldResemble, Cell{Row: 0, Col: 2})
	test.That(t, zero.Center(Cell{Row: 1, Col: 0}).Y, test.ShouldAlmostEqual, 0.03)
	test.That(t, zero.Meters(50), test.ShouldAlmostEqual, 1.0)
}
