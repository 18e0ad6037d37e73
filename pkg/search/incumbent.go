package search

import (
	"sync"

	"github.com/bkpsolver/bkpsolver/pkg/board"
	"go.uber.org/atomic"
)

// Incumbent is the best-solution record shared across tasks inside one
// process: the best board found so far and its cost. Safe for
// concurrent use.
//
// bestCost is additionally mirrored in an atomic so that readers --
// notably the pruning oracle's cheap first check -- can consult it
// without taking the lock. A reader may observe a stale value; that
// only causes extra exploration, never loss of an optimal solution,
// because the critical section re-checks before commit. The lock
// covers only the read-then-write commit of (bestBoard, bestCost)
// together.
type Incumbent struct {
	mu        sync.Mutex
	bestBoard *board.Board
	bestCost  atomic.Int64
}

// NewIncumbent initializes the incumbent to (copy of initial board, +∞).
func NewIncumbent(initial *board.Board) *Incumbent {
	inc := &Incumbent{bestBoard: initial.Copy()}
	inc.bestCost.Store(int64(board.MaxCost))
	return inc
}

// NewIncumbentWithBound initializes the incumbent with a caller-supplied
// starting bound, as a worker does from the bound embedded in its work
// assignment.
func NewIncumbentWithBound(initial *board.Board, bound int) *Incumbent {
	inc := &Incumbent{bestBoard: initial.Copy()}
	inc.bestCost.Store(int64(bound))
	return inc
}

// BestCost returns the current best cost. May be stale by the time the
// caller acts on it; safe to call without synchronization.
func (inc *Incumbent) BestCost() int {
	return int(inc.bestCost.Load())
}

// BestBoard returns a copy of the current best board.
func (inc *Incumbent) BestBoard() *board.Board {
	inc.mu.Lock()
	defer inc.mu.Unlock()

	return inc.bestBoard.Copy()
}

// tryCommit re-checks the pruning oracle under the lock and, if n still
// improves on the incumbent, commits it. Returns true iff committed.
func (inc *Incumbent) tryCommit(n *Node) bool {
	inc.mu.Lock()
	defer inc.mu.Unlock()

	if CannotImprove(n, int(inc.bestCost.Load())) {
		return false // someone else got there first, or it no longer helps
	}

	inc.bestBoard = n.Board.Copy()
	inc.bestCost.Store(int64(n.Depth))
	return true
}

// ConsiderExternal folds in a result reported by an external source --
// a worker reporting back to a scheduler, say -- adopting it iff its
// cost beats the current best.
func (inc *Incumbent) ConsiderExternal(b *board.Board) bool {
	inc.mu.Lock()
	defer inc.mu.Unlock()

	cost := b.Cost()
	if cost >= int(inc.bestCost.Load()) {
		return false
	}
	inc.bestBoard = b.Copy()
	inc.bestCost.Store(int64(cost))
	return true
}
