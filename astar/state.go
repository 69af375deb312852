package astar

import (
	"container/heap"
	"context"

	"github.com/pkg/errors"

	"github.com/pdrpinto/gridplanner/internal"
)

// searchState is the orchestrator's bookkeeping for one search. It is shared
// by Search and Stepper and never outlives either.
type searchState[NodeType comparable] struct {
	graph     Graph[NodeType]
	start     NodeType
	goal      NodeType
	heuristic Heuristic[NodeType]
	options   Options

	openSet    PriorityQueue[NodeType]
	openSetMap map[NodeType]*PriorityQueueItem[NodeType]
	closedSet  map[NodeType]bool
	cameFrom   map[NodeType]NodeType
	gScore     map[NodeType]float64
	sequence   uint64

	current       NodeType
	expandedNodes int
	done          bool
	found         bool
	err           error
	path          []NodeType
	totalCost     float64
}

func newSearchState[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options Options,
) *searchState[NodeType] {
	state := &searchState[NodeType]{
		graph:      graph,
		start:      startNode,
		goal:       goalNode,
		heuristic:  heuristic,
		options:    options,
		openSet:    make(PriorityQueue[NodeType], 0),
		openSetMap: make(map[NodeType]*PriorityQueueItem[NodeType]),
		closedSet:  make(map[NodeType]bool),
		cameFrom:   make(map[NodeType]NodeType),
		gScore:     map[NodeType]float64{startNode: 0},
	}
	heap.Init(&state.openSet)
	state.push(startNode, 0, heuristic(startNode, goalNode))
	return state
}

func (state *searchState[NodeType]) nextSequence() uint64 {
	state.sequence++
	return state.sequence
}

func (state *searchState[NodeType]) push(node NodeType, gScore, fCost float64) {
	item := &PriorityQueueItem[NodeType]{
		Node:     node,
		GScore:   gScore,
		FCost:    fCost,
		Sequence: state.nextSequence(),
	}
	heap.Push(&state.openSet, item)
	state.openSetMap[node] = item
}

// advance expands the next open node. It reports true once the search has
// finished, either at the goal or with an empty frontier. A search that ended
// in an error keeps returning that error.
func (state *searchState[NodeType]) advance(ctx context.Context) (bool, error) {
	if state.done {
		return state.err == nil, state.err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var currentItem *PriorityQueueItem[NodeType]
	for currentItem == nil {
		if state.openSet.Len() == 0 {
			state.done = true
			return true, nil
		}
		item := heap.Pop(&state.openSet).(*PriorityQueueItem[NodeType])
		delete(state.openSetMap, item.Node)
		if !state.closedSet[item.Node] {
			currentItem = item
		}
	}

	if maxExpansions := state.options.MaxExpansions; maxExpansions > 0 && state.expandedNodes >= maxExpansions {
		return false, state.fail(errors.Wrapf(ErrBudgetExhausted, "after %d expansions", state.expandedNodes))
	}

	currentNode := currentItem.Node
	state.closedSet[currentNode] = true
	state.current = currentNode
	state.expandedNodes++

	if currentNode == state.goal {
		state.done = true
		state.found = true
		state.totalCost = currentItem.GScore
		state.path = internal.ReconstructPath(state.cameFrom, currentNode, state.start)
		return true, nil
	}

	proposals, err := proposeAll(
		ctx,
		state.options.NumberOfWorkers,
		currentNode,
		currentItem.GScore,
		state.goal,
		state.heuristic,
		state.graph.Neighbors(currentNode),
	)
	if err != nil {
		return false, state.fail(err)
	}
	for _, proposal := range proposals {
		state.relax(proposal)
	}
	return false, nil
}

func (state *searchState[NodeType]) fail(err error) error {
	state.done = true
	state.err = err
	return err
}

func (state *searchState[NodeType]) relax(proposal RelaxProposal[NodeType]) {
	if state.closedSet[proposal.ToNode] {
		return
	}
	if currentG, exists := state.gScore[proposal.ToNode]; exists && proposal.GScore >= currentG {
		return
	}
	state.gScore[proposal.ToNode] = proposal.GScore
	state.cameFrom[proposal.ToNode] = proposal.FromNode

	item, inOpen := state.openSetMap[proposal.ToNode]
	if !inOpen {
		state.push(proposal.ToNode, proposal.GScore, proposal.FCost)
		return
	}
	// an improved entry counts as a fresh insertion for tie-breaking
	item.GScore = proposal.GScore
	item.FCost = proposal.FCost
	item.Sequence = state.nextSequence()
	heap.Fix(&state.openSet, item.IndexInQueue)
}

func (state *searchState[NodeType]) result() Result[NodeType] {
	return Result[NodeType]{
		Path:          state.path,
		TotalCost:     state.totalCost,
		ExpandedNodes: state.expandedNodes,
		Found:         state.found,
	}
}
