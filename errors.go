package gridplanner

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/pdrpinto/gridplanner/astar"
	"github.com/pdrpinto/gridplanner/grid"
)

var (
	// ErrInvalidInput is returned, wrapped, when the grid is missing or an
	// endpoint is outside the grid or blocked. No search is run.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSearchBudgetExhausted is returned when WithMaxExpansions cut the
	// search short. The goal may still be reachable.
	ErrSearchBudgetExhausted = astar.ErrBudgetExhausted
)

// validateEndpoints reports every problem with start and goal at once.
func validateEndpoints(g *grid.Grid, start, goal grid.Cell) error {
	if g == nil {
		return errors.Wrap(ErrInvalidInput, "nil grid")
	}
	var errs error
	multierr.AppendInto(&errs, checkEndpoint(g, "start", start))
	multierr.AppendInto(&errs, checkEndpoint(g, "goal", goal))
	return errs
}

func checkEndpoint(g *grid.Grid, name string, c grid.Cell) error {
	switch {
	case !g.InBounds(c):
		return errors.Wrapf(ErrInvalidInput, "%s %v is outside the %dx%d grid", name, c, g.Rows(), g.Cols())
	case g.Blocked(c):
		return errors.Wrapf(ErrInvalidInput, "%s %v is blocked", name, c)
	}
	return nil
}
