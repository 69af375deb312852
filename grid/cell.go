package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Cell is a (row, column) coordinate on a Grid.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add offsets c by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Sub returns the offset from other to c.
func (c Cell) Sub(other Cell) Cell {
	return Cell{Row: c.Row - other.Row, Col: c.Col - other.Col}
}

// ParseCell reads a cell written as "row,col". Parentheses and spaces are ignored.
func ParseCell(s string) (Cell, error) {
	trimmed := strings.Trim(strings.TrimSpace(s), "()")
	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return Cell{}, errors.Errorf("cell %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Cell{}, errors.Wrapf(err, "cell %q: bad row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Cell{}, errors.Wrapf(err, "cell %q: bad column", s)
	}
	return Cell{Row: row, Col: col}, nil
}

// UnmarshalYAML accepts a two element sequence [row, col].
func (c *Cell) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return errors.Wrapf(err, "line %d: cell", value.Line)
	}
	if len(pair) != 2 {
		return errors.Errorf("line %d: cell wants [row, col], got %d values", value.Line, len(pair))
	}
	c.Row, c.Col = pair[0], pair[1]
	return nil
}

// MarshalYAML writes the cell as [row, col].
func (c Cell) MarshalYAML() (any, error) {
	return []int{c.Row, c.Col}, nil
}
