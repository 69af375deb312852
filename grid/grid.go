package grid

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrRagged is returned when rows of an occupancy map differ in length.
	ErrRagged = errors.New("rows have different lengths")
	// ErrOutOfBounds is returned when a cell is outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
)

// Grid is a rectangular occupancy map. The planner only reads it; callers
// must not mutate a Grid while a search over it is running.
type Grid struct {
	rows, cols int
	blocked    []bool
}

// New returns a rows x cols grid with every cell free.
func New(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Errorf("invalid grid size %dx%d", rows, cols)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return nil, errors.Errorf("grid size %dx%d overflows", rows, cols)
	}
	return &Grid{rows: rows, cols: cols, blocked: make([]bool, rows*cols)}, nil
}

// FromRows builds a grid from rows of occupancy flags, true meaning blocked.
func FromRows(rows [][]bool) (*Grid, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	g, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrRagged, "row %d has %d cells, want %d", r, len(row), cols)
		}
		copy(g.blocked[r*cols:(r+1)*cols], row)
	}
	return g, nil
}

// FromInts builds a grid from an integer matrix where any non-zero value is
// an obstacle.
func FromInts(rows [][]int) (*Grid, error) {
	flags := make([][]bool, len(rows))
	for r, row := range rows {
		flags[r] = make([]bool, len(row))
		for c, v := range row {
			flags[r][c] = v != 0
		}
	}
	return FromRows(flags)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies in [0, rows) x [0, cols).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Blocked reports whether c is an obstacle. Cells outside the grid count as blocked.
func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[g.index(c)]
}

// Free reports whether c is inside the grid and not an obstacle.
func (g *Grid) Free(c Cell) bool {
	return !g.Blocked(c)
}

// Block marks cells as obstacles.
func (g *Grid) Block(cells ...Cell) error {
	return g.set(true, cells)
}

// Clear marks cells as free.
func (g *Grid) Clear(cells ...Cell) error {
	return g.set(false, cells)
}

// BlockedCount returns the number of obstacle cells.
func (g *Grid) BlockedCount() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, blocked: append([]bool(nil), g.blocked...)}
}

func (g *Grid) set(blocked bool, cells []Cell) error {
	for _, c := range cells {
		if !g.InBounds(c) {
			return errors.Wrapf(ErrOutOfBounds, "%v on %dx%d grid", c, g.rows, g.cols)
		}
	}
	for _, c := range cells {
		g.blocked[g.index(c)] = blocked
	}
	return nil
}

func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}
