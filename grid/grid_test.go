package grid

import (
	"errors"
	"math"
	"testing"

	"go.viam.com/test"
	"gopkg.in/yaml.v3"
)

func TestNew(t *testing.T) {
	g, err := New(3, 4)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, g.Rows(), test.ShouldEqual, 3)
	test.That(t, g.Cols(), test.ShouldEqual, 4)
	test.That(t, g.BlockedCount(), test.ShouldEqual, 0)

	_, err = New(-1, 4)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = New(1<<32, 1<<32)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "overflows")

	g, err = New(0, math.MaxInt)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, g.InBounds(Cell{0, 0}), test.ShouldBeFalse)
}

func TestFromRows(t *testing.T) {
	t.Run("rectangular", func(t *testing.T) {
		g, err := FromRows([][]bool{
			{false, true, false},
			{false, false, true},
		})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, g.Rows(), test.ShouldEqual, 2)
		test.That(t, g.Cols(), test.ShouldEqual, 3)
		test.That(t, g.Blocked(Cell{0, 1}), test.ShouldBeTrue)
		test.That(t, g.Blocked(Cell{1, 2}), test.ShouldBeTrue)
		test.That(t, g.Free(Cell{1, 1}), test.ShouldBeTrue)
		test.That(t, g.BlockedCount(), test.ShouldEqual, 2)
	})

	t.Run("ragged", func(t *testing.T) {
		_, err := FromRows([][]bool{{false, false}, {false}})
		test.That(t, errors.Is(err, ErrRagged), test.ShouldBeTrue)
		test.That(t, err.Error(), test.ShouldContainSubstring, "row 1 has 1 cells, want 2")
	})

	t.Run("ints", func(t *testing.T) {
		g, err := FromInts([][]int{{0, 1}, {2, 0}})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, g.Blocked(Cell{0, 1}), test.ShouldBeTrue)
		test.That(t, g.Blocked(Cell{1, 0}), test.ShouldBeTrue)
		test.That(t, g.Blocked(Cell{0, 0}), test.ShouldBeFalse)
	})
}

func TestBounds(t *testing.T) {
	g, err := New(2, 3)
	test.That(t, err, test.ShouldBeNil)
	for _, c := range []Cell{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		test.That(t, g.InBounds(c), test.ShouldBeFalse)
		test.That(t, g.Blocked(c), test.ShouldBeTrue)
		test.That(t, g.Free(c), test.ShouldBeFalse)
	}
	test.That(t, g.InBounds(Cell{1, 2}), test.ShouldBeTrue)
}

func TestBlockClearClone(t *testing.T) {
	g, err := New(3, 3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, g.Block(Cell{1, 1}, Cell{2, 0}), test.ShouldBeNil)
	test.That(t, g.BlockedCount(), test.ShouldEqual, 2)

	clone := g.Clone()
	test.That(t, g.Clear(Cell{1, 1}), test.ShouldBeNil)
	test.That(t, g.Free(Cell{1, 1}), test.ShouldBeTrue)
	test.That(t, clone.Blocked(Cell{1, 1}), test.ShouldBeTrue)

	err = g.Block(Cell{0, 0}, Cell{3, 3})
	test.That(t, errors.Is(err, ErrOutOfBounds), test.ShouldBeTrue)
	// nothing is applied when one cell is bad
	test.That(t, g.Free(Cell{0, 0}), test.ShouldBeTrue)
}

func TestParseCell(t *testing.T) {
	c, err := ParseCell("3,4")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c, test.ShouldResemble, Cell{Row: 3, Col: 4})

	c, err = ParseCell(" (10, 0) ")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c, test.ShouldResemble, Cell{Row: 10, Col: 0})
	test.That(t, c.String(), test.ShouldEqual, "(10,0)")

	for _, bad := range []string{"", "1", "1,2,3", "a,1", "1,b"} {
		_, err := ParseCell(bad)
		test.That(t, err, test.ShouldNotBeNil)
	}
}

func TestCellYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]Cell{"start": {Row: 2, Col: 7}})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(out), test.ShouldContainSubstring, "- 2\n")

	var decoded map[string]Cell
	test.That(t, yaml.Unmarshal(out, &decoded), test.ShouldBeNil)
	test.That(t, decoded["start"], test.ShouldResemble, Cell{Row: 2, Col: 7})

	var bad Cell
	err = yaml.Unmarshal([]byte("[1, 2, 3]"), &bad)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "got 3 values")
}
