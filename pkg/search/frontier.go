package search

import (
	"github.com/bkpsolver/bkpsolver/pkg/board"
	"github.com/bkpsolver/bkpsolver/pkg/movegen"
)

// Frontier is the BFS-expanded set of subproblems produced by Generate:
// the unit of distributable work handed to a scheduler.
type Frontier struct {
	// Nodes are all boards reachable in exactly Plies plies from the
	// root, in deterministic expansion order.
	Nodes []*Node
	// EarlySolution is set if a node with zero pawns remaining was
	// encountered while expanding, before Plies was reached.
	EarlySolution *board.Board
}

// Generate BFS-expands root for the given number of plies.
//
// The full BFS expansion always completes and the full frontier is
// always returned, regardless of whether a node with zero pawns
// remaining was spotted along the way; that early solution is captured
// as an additional, independent output a caller may use to seed its
// incumbent bound before the frontier's own subproblems are dispatched.
func Generate(root *Node, plies int) Frontier {
	cur := []*Node{root}
	var early *board.Board

	for ply := 0; ply < plies; ply++ {
		if early == nil {
			for _, n := range cur {
				if n.Board.PawnCount() == 0 {
					early = n.Board.Copy()
					break
				}
			}
		}

		var next []*Node
		for _, n := range cur {
			for _, cand := range movegen.For(n.Board, n.Side) {
				next = append(next, applyCandidate(n, cand))
			}
		}
		cur = next
	}

	return Frontier{Nodes: cur, EarlySolution: early}
}
