package cluster

import (
	"context"
	"fmt"

	"github.com/bkpsolver/bkpsolver/pkg/search"
	"github.com/bkpsolver/bkpsolver/pkg/wire"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

// RunWorker implements a worker's event loop. On each Work message it
// deserializes the subproblem, runs the task-parallel search on it with
// the embedded bound as the initial incumbent, and replies Done with the
// solved board (which may equal the starting board if no improvement was
// found). It exits on Finished.
//
// A malformed Work payload is fatal and returned to the caller; there is
// no retry layer.
func RunWorker(ctx context.Context, id int, ch Channel, opt search.Options) error {
	for msg := range ch.ToWorker {
		switch msg.Tag {
		case Work:
			sp, err := wire.DecodeSubproblem(msg.Payload)
			if err != nil {
				return fmt.Errorf("worker %v: malformed subproblem: %w", id, err)
			}

			logw.Debugf(ctx, "worker %v: received subproblem depth=%v bound=%v", id, sp.Depth, sp.Bound)

			n := &search.Node{Board: sp.Board, Depth: sp.Depth, Side: sp.Side}
			inc := search.NewIncumbentWithBound(sp.Board, sp.Bound)
			counter := new(atomic.Uint64)

			if err := search.Parallel(ctx, n, inc, counter, opt); err != nil {
				return fmt.Errorf("worker %v: search failed: %w", id, err)
			}

			best := inc.BestBoard()
			logw.Debugf(ctx, "worker %v: solved depth=%v cost=%v nodes=%v", id, sp.Depth, best.Cost(), counter.Load())

			select {
			case ch.FromWorker <- Message{Tag: Done, Payload: wire.EncodeBoard(best)}:
			case <-ctx.Done():
				return ctx.Err()
			}

		case Finished:
			logw.Debugf(ctx, "worker %v: retired", id)
			return nil

		default:
			return fmt.Errorf("worker %v: unknown message tag %v", id, msg.Tag)
		}
	}
	return nil
}
