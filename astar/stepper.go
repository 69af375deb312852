package astar

import (
	"context"
	"maps"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current   NodeType
	Open      map[NodeType]bool
	Closed    map[NodeType]bool
	CameFrom  map[NodeType]NodeType
	Done      bool
	Found     bool
	Path      []NodeType
	TotalCost float64
	StepIndex int
}

// Stepper runs the same search as Search one node expansion at a time.
type Stepper[NodeType comparable] struct {
	ctx    context.Context
	cancel context.CancelFunc
	state  *searchState[NodeType]
}

// NewStepper creates a new stepper using the same expansion logic as Search
func NewStepper[NodeType comparable](
	parent context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options ...Option,
) *Stepper[NodeType] {
	ctx, cancel := context.WithCancel(parent)
	return &Stepper[NodeType]{
		ctx:    ctx,
		cancel: cancel,
		state:  newSearchState(graph, startNode, goalNode, heuristic, applyOptions(options)),
	}
}

// Close releases the stepper. Further calls to Step on an unfinished search
// fail with context.Canceled.
func (s *Stepper[NodeType]) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done every call returns the final snapshot, or the
// error that ended it.
func (s *Stepper[NodeType]) Step() (StepSnapshot[NodeType], error) {
	if _, err := s.state.advance(s.ctx); err != nil {
		return StepSnapshot[NodeType]{Done: s.state.done, StepIndex: s.state.expandedNodes}, err
	}
	return s.snapshot(), nil
}

// Result returns the outcome so far. Found is false until the goal is reached.
// Check Err to tell a failed search from an unreachable goal.
func (s *Stepper[NodeType]) Result() Result[NodeType] {
	return s.state.result()
}

// Err returns the error that ended the search, if any.
func (s *Stepper[NodeType]) Err() error {
	return s.state.err
}

func (s *Stepper[NodeType]) snapshot() StepSnapshot[NodeType] {
	open := make(map[NodeType]bool, len(s.state.openSetMap))
	for node := range s.state.openSetMap {
		open[node] = true
	}
	return StepSnapshot[NodeType]{
		Current:   s.state.current,
		Open:      open,
		Closed:    maps.Clone(s.state.closedSet),
		CameFrom:  maps.Clone(s.state.cameFrom),
		Done:      s.state.done,
		Found:     s.state.found,
		Path:      append([]NodeType(nil), s.state.path...),
		TotalCost: s.state.totalCost,
		StepIndex: s.state.expandedNodes,
	}
}
