package astar

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ExpandTask represents a request from the orchestrator to the workers.
type ExpandTask[NodeType comparable] struct {
	FromNode      NodeType
	Neighbor      Neighbor[NodeType]
	CurrentGScore float64
	GoalNode      NodeType
	HeuristicFunc Heuristic[NodeType]
}

// RelaxProposal is the worker's suggestion for updating a path.
type RelaxProposal[NodeType comparable] struct {
	FromNode NodeType
	ToNode   NodeType
	GScore   float64
	FCost    float64
}

func (task ExpandTask[NodeType]) propose() RelaxProposal[NodeType] {
	tentativeG := task.CurrentGScore + task.Neighbor.Cost
	return RelaxProposal[NodeType]{
		FromNode: task.FromNode,
		ToNode:   task.Neighbor.ID,
		GScore:   tentativeG,
		FCost:    tentativeG + task.HeuristicFunc(task.Neighbor.ID, task.GoalNode),
	}
}

// proposeAll evaluates one task per neighbor. The returned proposals are in
// neighbor order whatever the number of workers.
func proposeAll[NodeType comparable](
	ctx context.Context,
	workers int,
	from NodeType,
	currentG float64,
	goal NodeType,
	heuristic Heuristic[NodeType],
	neighbors []Neighbor[NodeType],
) ([]RelaxProposal[NodeType], error) {
	proposals := make([]RelaxProposal[NodeType], len(neighbors))
	for _, neighbor := range neighbors {
		if neighbor.Cost < 0 {
			return nil, errors.Wrapf(ErrNegativeCost, "edge %v -> %v costs %v", from, neighbor.ID, neighbor.Cost)
		}
	}

	task := func(i int) ExpandTask[NodeType] {
		return ExpandTask[NodeType]{
			FromNode:      from,
			Neighbor:      neighbors[i],
			CurrentGScore: currentG,
			GoalNode:      goal,
			HeuristicFunc: heuristic,
		}
	}

	if workers <= 1 || len(neighbors) < 2 {
		for i := range neighbors {
			proposals[i] = task(i).propose()
		}
		return proposals, nil
	}

	var group errgroup.Group
	group.SetLimit(workers)
	for i := range neighbors {
		i := i
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			proposals[i] = task(i).propose()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return proposals, nil
}
