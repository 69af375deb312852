package grid

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestParseConnectivity(t *testing.T) {
	for in, want := range map[string]Connectivity{"4": FourConnected, "eight": EightConnected, " 8 ": EightConnected} {
		got, err := ParseConnectivity(in)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, got, test.ShouldEqual, want)
	}
	_, err := ParseConnectivity("6")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, EightConnected.String(), test.ShouldEqual, "8-connected")
	test.That(t, Connectivity(6).Valid(), test.ShouldBeFalse)
}

func TestNeighbors(t *testing.T) {
	g, err := New(3, 3)
	test.That(t, err, test.ShouldBeNil)
	center := Cell{1, 1}

	t.Run("four connected", func(t *testing.T) {
		steps := Movement{Connectivity: FourConnected}.Neighbors(g, center)
		test.That(t, steps, test.ShouldResemble, []Step{
			{Cell{2, 1}, 1}, {Cell{1, 2}, 1}, {Cell{0, 1}, 1}, {Cell{1, 0}, 1},
		})
	})

	t.Run("eight connected", func(t *testing.T) {
		steps := Movement{Connectivity: EightConnected, CornerCutting: true}.Neighbors(g, center)
		test.That(t, steps, test.ShouldHaveLength, 8)
		for _, step := range steps[4:] {
			test.That(t, step.Cost, test.ShouldEqual, math.Sqrt2)
		}
	})

	t.Run("corner of grid", func(t *testing.T) {
		steps := Movement{Connectivity: EightConnected, CornerCutting: true}.Neighbors(g, Cell{0, 0})
		test.That(t, steps, test.ShouldResemble, []Step{
			{Cell{1, 0}, 1}, {Cell{0, 1}, 1}, {Cell{1, 1}, math.Sqrt2},
		})
	})

	t.Run("obstacles and corner cutting", func(t *testing.T) {
		blocked := g.Clone()
		test.That(t, blocked.Block(Cell{1, 0}), test.ShouldBeNil)

		cutting := Movement{Connectivity: EightConnected, CornerCutting: true}
		test.That(t, cutting.Legal(blocked, Cell{0, 0}, Cell{1, 1}), test.ShouldBeTrue)
		test.That(t, cutting.Legal(blocked, Cell{0, 0}, Cell{1, 0}), test.ShouldBeFalse)

		strict := Movement{Connectivity: EightConnected}
		test.That(t, strict.Legal(blocked, Cell{0, 0}, Cell{1, 1}), test.ShouldBeFalse)
		test.That(t, strict.Legal(blocked, Cell{0, 1}, Cell{1, 2}), test.ShouldBeTrue)
		for _, step := range strict.Neighbors(blocked, Cell{0, 0}) {
			test.That(t, step.Cell, test.ShouldNotResemble, Cell{1, 1})
		}
	})

	t.Run("no long or diagonal jumps on four", func(t *testing.T) {
		four := Movement{Connectivity: FourConnected}
		test.That(t, four.Legal(g, Cell{0, 0}, Cell{1, 1}), test.ShouldBeFalse)
		test.That(t, four.Legal(g, Cell{0, 0}, Cell{0, 2}), test.ShouldBeFalse)
		test.That(t, four.Legal(g, Cell{0, 0}, Cell{0, 0}), test.ShouldBeFalse)
	})
}

func TestHeuristics(t *testing.T) {
	a, b := Cell{0, 0}, Cell{3, 4}
	test.That(t, Manhattan(a, b), test.ShouldEqual, 7.0)
	test.That(t, Euclidean(a, b), test.ShouldEqual, 5.0)
	test.That(t, Movement{Connectivity: FourConnected}.Heuristic(a, b), test.ShouldEqual, 7.0)
	test.That(t, Movement{Connectivity: EightConnected}.Heuristic(a, b), test.ShouldEqual, 5.0)

	// consistency: h(a) <= cost(a,b) + h(b) for every legal step
	g, err := New(6, 6)
	test.That(t, err, test.ShouldBeNil)
	goal := Cell{5, 2}
	for _, m := range []Movement{{Connectivity: FourConnected}, {Connectivity: EightConnected, CornerCutting: true}} {
		for r := 0; r < 6; r++ {
			for c := 0; c < 6; c++ {
				here := Cell{r, c}
				for _, step := range m.Neighbors(g, here) {
					test.That(t, m.Heuristic(here, goal), test.ShouldBeLessThanOrEqualTo,
						step.Cost+m.Heuristic(step.Cell, goal)+1e-9)
				}
			}
		}
	}
}
