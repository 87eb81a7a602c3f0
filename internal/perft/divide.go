// Package perft splits a perft count by root move and runs the subtrees on
// a worker pool.
package perft

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Result is the node count below one root move.
type Result = worker.Result

// Divide counts the leaf nodes of depth plies below every legal move of the
// side to move, using the given number of workers. Results come back in move
// list order together with their total.
func Divide(g *engine.Game, depth, workers int) ([]Result, uint64, error) {
	if depth < 1 {
		return nil, 0, fmt.Errorf("perft depth must be at least 1, got %d: %w", depth, errors.ErrInvalidConfig)
	}
	moves, err := g.LegalMoves()
	if err != nil {
		return nil, 0, err
	}

	pool := worker.NewPool(countSubtree,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(moves)+1),
	)
	pool.Start()

	board := g.Board()
	toMove := g.Turn().Opposite()
	for i, m := range moves {
		child := board.Copy()
		child.ApplyMove(m.Piece, m.To)
		pool.Submit(worker.WorkItem{
			Board:  child,
			ToMove: toMove,
			Move:   m,
			Depth:  depth - 1,
			Index:  i,
		})
	}
	go pool.Close()

	results := make([]Result, len(moves))
	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil && firstErr == nil {
			firstErr = errors.Wrapf(r.Error, "perft below %s", r.Move.UCI())
			pool.Stop()
		}
		results[r.Index] = r
	}
	if firstErr != nil {
		return nil, 0, firstErr
	}

	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return results, total, nil
}

func countSubtree(item worker.WorkItem) worker.Result {
	nodes, err := engine.Perft(item.Board, item.ToMove, item.Depth)
	return worker.Result{
		Move:  item.Move,
		Index: item.Index,
		Nodes: nodes,
		Error: err,
	}
}
