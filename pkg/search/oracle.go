package search

// CannotImprove is the pruning oracle. It returns true iff the
// partial state at n cannot possibly beat a solution of cost bestCost:
//
//  1. depth + pawnCount >= bestCost       -- even a capture every remaining
//     ply cannot beat the incumbent.
//  2. depth + pawnCount > maxDepth        -- would overrun the caller's
//     depth bound.
//  3. bestCost == board.MinDepth()        -- the theoretical lower bound
//     has been reached; further search cannot improve on it. This
//     condition is what lets every task/worker stop once any one of them
//     finds an optimal solution.
func CannotImprove(n *Node, bestCost int) bool {
	b := n.Board
	remaining := n.Depth + b.PawnCount()

	if remaining >= bestCost {
		return true
	}
	if remaining > b.MaxDepth() {
		return true
	}
	if bestCost == b.MinDepth() {
		return true
	}
	return false
}
