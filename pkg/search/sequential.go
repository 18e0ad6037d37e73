package search

import (
	"context"

	"github.com/bkpsolver/bkpsolver/pkg/movegen"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"go.uber.org/atomic"
)

// Sequential is the depth-first branch-and-bound core: single
// goroutine, no undo -- every recursive call owns a board copy of its
// own produced by applyCandidate. counter is incremented once per
// invocation, for diagnostics.
func Sequential(ctx context.Context, n *Node, inc *Incumbent, counter *atomic.Uint64) {
	counter.Inc()

	if contextx.IsCancelled(ctx) {
		return
	}
	if CannotImprove(n, inc.BestCost()) {
		return
	}

	if n.Board.PawnCount() == 0 {
		if inc.tryCommit(n) {
			logw.Debugf(ctx, "Sequential: new incumbent cost=%v", n.Depth)
		}
		return
	}

	for _, cand := range movegen.For(n.Board, n.Side) {
		Sequential(ctx, applyCandidate(n, cand), inc, counter)
	}
}
