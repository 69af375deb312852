package gridplanner

import (
	"context"

	"github.com/pkg/errors"

	"github.com/pdrpinto/gridplanner/astar"
	"github.com/pdrpinto/gridplanner/grid"
)

// Plan is the outcome of one search. An empty Path means the goal is
// unreachable.
type Plan struct {
	Path          grid.Path
	Cost          float64
	ExpandedNodes int
}

// Found reports whether a path exists.
func (p Plan) Found() bool { return len(p.Path) > 0 }

// Planner runs grid searches with a fixed set of options.
type Planner struct {
	options Options
}

// New returns a Planner configured by options.
func New(options ...Option) (*Planner, error) {
	plannerOptions := defaultOptions()
	for _, option := range options {
		option(&plannerOptions)
	}
	if !plannerOptions.Connectivity.Valid() {
		return nil, errors.Errorf("unsupported connectivity %d", plannerOptions.Connectivity)
	}
	if plannerOptions.MaxExpansions < 0 {
		return nil, errors.Errorf("negative expansion budget %d", plannerOptions.MaxExpansions)
	}
	return &Planner{options: plannerOptions}, nil
}

// FindPath plans on g with a background context.
func FindPath(g *grid.Grid, start, goal grid.Cell, options ...Option) (grid.Path, error) {
	planner, err := New(options...)
	if err != nil {
		return nil, err
	}
	return planner.FindPath(context.Background(), g, start, goal)
}

// Movement returns the movement model searches use.
func (p *Planner) Movement() grid.Movement {
	return grid.Movement{Connectivity: p.options.Connectivity, CornerCutting: p.options.CornerCutting}
}

// FindPath returns a minimum-cost path from start to goal inclusive, or an
// empty path if goal is unreachable.
func (p *Planner) FindPath(ctx context.Context, g *grid.Grid, start, goal grid.Cell) (grid.Path, error) {
	plan, err := p.Plan(ctx, g, start, goal)
	if err != nil {
		return nil, err
	}
	return plan.Path, nil
}

// Plan is FindPath with the path cost and search effort.
func (p *Planner) Plan(ctx context.Context, g *grid.Grid, start, goal grid.Cell) (Plan, error) {
	if err := validateEndpoints(g, start, goal); err != nil {
		return Plan{}, err
	}
	logger := p.options.Logger.With("start", start, "goal", goal, "connectivity", p.options.Connectivity)

	result, err := astar.Search[grid.Cell](
		ctx,
		p.graph(g),
		start,
		goal,
		p.Movement().Heuristic,
		p.searchOptions()...,
	)
	if err != nil {
		logger.Debugw("search failed", "expanded", result.ExpandedNodes, "error", err)
		return Plan{ExpandedNodes: result.ExpandedNodes}, err
	}
	if !result.Found {
		logger.Debugw("goal unreachable", "expanded", result.ExpandedNodes)
		return Plan{ExpandedNodes: result.ExpandedNodes}, nil
	}
	logger.Debugw("planned path", "cells", len(result.Path), "cost", result.TotalCost, "expanded", result.ExpandedNodes)
	return Plan{
		Path:          result.Path,
		Cost:          result.TotalCost,
		ExpandedNodes: result.ExpandedNodes,
	}, nil
}

// Stepper validates the endpoints and returns a step-by-step search over g.
// The caller must Close it.
func (p *Planner) Stepper(ctx context.Context, g *grid.Grid, start, goal grid.Cell) (*astar.Stepper[grid.Cell], error) {
	if err := validateEndpoints(g, start, goal); err != nil {
		return nil, err
	}
	return astar.NewStepper[grid.Cell](ctx, p.graph(g), start, goal, p.Movement().Heuristic, p.searchOptions()...), nil
}

func (p *Planner) graph(g *grid.Grid) cellGraph {
	return cellGraph{grid: g, movement: p.Movement()}
}

func (p *Planner) searchOptions() []astar.Option {
	return []astar.Option{
		astar.WithWorkers(p.options.NumberOfWorkers),
		astar.WithMaxExpansions(p.options.MaxExpansions),
	}
}
