package search

import (
	"github.com/bkpsolver/bkpsolver/pkg/board"
	"github.com/bkpsolver/bkpsolver/pkg/movegen"
)

// Node is a value carrying a board position, the ply at which it sits
// and whose move it is. Owned exclusively by the goroutine currently
// exploring it; copied (via applyCandidate) whenever a child is spawned.
type Node struct {
	Board *board.Board
	Depth int
	Side  board.Side
}

// Root returns the search node for the initial board: depth 0, bishop to
// move always opens the sequence.
func Root(b *board.Board) *Node {
	return &Node{Board: b, Depth: 0, Side: board.BishopToMove}
}

// Subproblem is a Node tagged with the incumbent bound it was dispatched
// with; it is the distributable unit of work handed from a scheduler to
// a worker.
type Subproblem struct {
	Node
	IncumbentBound int
}

// applyCandidate copies n's board, applies the candidate move for the
// side to move, and returns the resulting child node one ply deeper with
// the side flipped. Each child owns a fresh board copy; no undo is
// needed.
func applyCandidate(n *Node, cand movegen.Candidate) *Node {
	cp := n.Board.Copy()
	if n.Side == board.BishopToMove {
		cp.ApplyBishopMove(cand.Row, cand.Col)
	} else {
		cp.ApplyKnightMove(cand.Row, cand.Col)
	}
	return &Node{Board: cp, Depth: n.Depth + 1, Side: n.Side.Opponent()}
}
