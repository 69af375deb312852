package astar

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrBudgetExhausted is returned when a search hits its expansion budget
	// before reaching the goal. It is distinct from an unreachable goal.
	ErrBudgetExhausted = errors.New("expansion budget exhausted")
	// ErrNegativeCost is returned when a graph reports a negative edge cost.
	ErrNegativeCost = errors.New("negative edge cost")
)

// Graph is generic over node type N.
// N must be comparable so it can be used in maps.
// Neighbors must return neighbors in a stable order for results to be
// reproducible.
type Graph[NodeType comparable] interface {
	Neighbors(node NodeType) []Neighbor[NodeType]
}

// Neighbor represents a reachable node with a cost.
type Neighbor[NodeType comparable] struct {
	ID   NodeType
	Cost float64
}

// Heuristic returns the estimated cost from node a to node b
type Heuristic[NodeType comparable] func(from NodeType, to NodeType) float64

// Result contains the outcome of a search
type Result[NodeType comparable] struct {
	Path          []NodeType
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	// MaxExpansions caps the number of expanded nodes. Zero means no cap.
	MaxExpansions int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many goroutines evaluate neighbor proposals.
// One (the default) keeps the search on the calling goroutine.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithMaxExpansions bounds the number of node expansions.
func WithMaxExpansions(maxExpansions int) Option {
	return func(options *Options) { options.MaxExpansions = maxExpansions }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{NumberOfWorkers: 1}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

// Search runs A* from startNode to goalNode. An unreachable goal is not an
// error: the Result has Found set to false and an empty Path.
func Search[NodeType comparable](
	contextObject context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options ...Option,
) (Result[NodeType], error) {
	state := newSearchState(graph, startNode, goalNode, heuristic, applyOptions(options))
	for {
		done, err := state.advance(contextObject)
		if err != nil {
			return Result[NodeType]{ExpandedNodes: state.expandedNodes}, err
		}
		if done {
			return state.result(), nil
		}
	}
}
