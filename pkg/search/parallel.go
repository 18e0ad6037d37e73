package search

import (
	"context"

	"github.com/bkpsolver/bkpsolver/pkg/movegen"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Parallel is the shared-memory task-parallel search. While a
// node's depth is <= opt's taskThreshold, each child branch is spawned
// as an independent task if a slot of the semaphore sized to
// workerThreads is free, and explored on the current goroutine
// otherwise; once the threshold is passed, the remaining subtree is explored with
// Sequential on the current goroutine. Tasks share only the incumbent
// (its own mutex) and the call counter (atomic); termination is the
// errgroup join barrier on the root.
func Parallel(ctx context.Context, n *Node, inc *Incumbent, counter *atomic.Uint64, opt Options) error {
	sem := semaphore.NewWeighted(int64(opt.ResolvedWorkerThreads()))
	g, gctx := errgroup.WithContext(ctx)

	parallelRec(gctx, n, inc, counter, opt.ResolvedTaskThreshold(), sem, g)

	return g.Wait()
}

func parallelRec(ctx context.Context, n *Node, inc *Incumbent, counter *atomic.Uint64, threshold int, sem *semaphore.Weighted, g *errgroup.Group) {
	counter.Inc()

	if contextx.IsCancelled(ctx) {
		return
	}
	if CannotImprove(n, inc.BestCost()) {
		return
	}

	if n.Board.PawnCount() == 0 {
		if inc.tryCommit(n) {
			logw.Debugf(ctx, "Parallel: new incumbent cost=%v", n.Depth)
		}
		return
	}

	if n.Depth > threshold {
		// Past the fan-out threshold: explore the remainder of this
		// subtree sequentially on the current goroutine.
		for _, cand := range movegen.For(n.Board, n.Side) {
			Sequential(ctx, applyCandidate(n, cand), inc, counter)
		}
		return
	}

	for _, cand := range movegen.For(n.Board, n.Side) {
		child := applyCandidate(n, cand)

		if !sem.TryAcquire(1) {
			// No spare capacity: fold this branch into the current
			// goroutine rather than block waiting for a slot.
			parallelRec(ctx, child, inc, counter, threshold, sem, g)
			continue
		}

		g.Go(func() error {
			defer sem.Release(1)
			parallelRec(ctx, child, inc, counter, threshold, sem, g)
			return nil
		})
	}
}
