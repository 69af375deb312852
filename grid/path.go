package grid

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// ErrIllegalStep is returned by Path.Validate when two consecutive cells are
// not a legal step of the movement model.
var ErrIllegalStep = errors.New("illegal step")

// Path is an ordered sequence of cells from start to goal inclusive. An empty
// Path means no path exists.
type Path []Cell

// Empty reports whether p holds no cells.
func (p Path) Empty() bool { return len(p) == 0 }

// Steps returns the cost of each step of p.
func (p Path) Steps() []float64 {
	if len(p) < 2 {
		return nil
	}
	costs := make([]float64, len(p)-1)
	for i := 1; i < len(p); i++ {
		costs[i-1] = stepCost(p[i].Sub(p[i-1]))
	}
	return costs
}

// Cost is the total step cost of p: 1 per orthogonal step, √2 per diagonal.
func (p Path) Cost() float64 {
	return floats.Sum(p.Steps())
}

// Contains reports whether c is on p.
func (p Path) Contains(c Cell) bool {
	return slices.Contains(p, c)
}

// Validate checks every step of p against g and m.
func (p Path) Validate(g *Grid, m Movement) error {
	for i, c := range p {
		if g.Blocked(c) {
			return errors.Wrapf(ErrIllegalStep, "cell %d %v is blocked or out of bounds", i, c)
		}
		if i > 0 && !m.Legal(g, p[i-1], c) {
			return errors.Wrapf(ErrIllegalStep, "%v -> %v under %v", p[i-1], c, m.Connectivity)
		}
	}
	return nil
}

// String renders p as space separated cells.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
