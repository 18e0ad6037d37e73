package search

import "github.com/bkpsolver/bkpsolver/pkg/board"

// Solution is a search's output: the ordered move log of the best board
// found and its cost. When no solution within bounds was found, Cost is
// board.MaxCost and Moves is the log of the incumbent board (possibly
// the initial board).
type Solution struct {
	Moves []board.Move
	Cost  int

	// NodesVisited is a diagnostic call counter, incremented once per
	// search-node visit. Only populated by callers that run a search
	// directly in-process (Sequential, Parallel); a distributed run's
	// wire messages carry no counter field, so its Solution leaves this
	// at 0.
	NodesVisited uint64
}

// FromBoard builds a Solution from a final board.
func FromBoard(b *board.Board, nodesVisited uint64) Solution {
	return Solution{Moves: b.Moves(), Cost: b.Cost(), NodesVisited: nodesVisited}
}
