package cluster

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/bkpsolver/bkpsolver/pkg/board"
	"github.com/bkpsolver/bkpsolver/pkg/search"
	"github.com/bkpsolver/bkpsolver/pkg/wire"
	"github.com/seekerror/logw"
)

// Scheduler is a distributed master: it generates a frontier of
// subproblems from the initial board, dispatches them to workers on
// demand, and aggregates incumbent bounds as workers report back.
type Scheduler struct {
	opt search.Options
}

func NewScheduler(opt search.Options) *Scheduler {
	return &Scheduler{opt: opt}
}

// Run drives the scheduler's event loop against the given worker
// channels until every worker is retired, then returns the incumbent as
// a Solution. The scheduler never blocks on a specific worker: it
// drains whichever worker's completion arrives first.
//
// Run is single-threaded over its own event loop; channels is the
// scheduler's single-writer view of its workers and must not be touched
// concurrently from elsewhere while Run is in flight.
func (s *Scheduler) Run(ctx context.Context, root *board.Board, channels []Channel) (search.Solution, error) {
	if len(channels) == 0 {
		return search.Solution{}, fmt.Errorf("cluster: scheduler requires at least one worker")
	}

	frontier := search.Generate(search.Root(root), s.opt.ResolvedFrontierPlies())

	inc := search.NewIncumbent(root)
	if frontier.EarlySolution != nil {
		inc.ConsiderExternal(frontier.EarlySolution)
	}
	bestBoard := inc.BestBoard()
	bestCost := bestBoard.Cost()

	logw.Infof(ctx, "cluster: frontier size=%v workers=%v bestCost=%v", len(frontier.Nodes), len(channels), costString(bestCost))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	completions := make(chan completion)
	for i, ch := range channels {
		i, ch := i, ch
		go func() {
			for {
				select {
				case msg, ok := <-ch.FromWorker:
					if !ok {
						return
					}
					select {
					case completions <- completion{worker: i, msg: msg}:
					case <-ctx.Done():
						return
					}
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	head := 0
	retired := 0

	dispatchOrRetire := func(i int) {
		if head < len(frontier.Nodes) {
			n := frontier.Nodes[head]
			sp := wire.Subproblem{Depth: n.Depth, Bound: bestCost, Side: n.Side, Board: n.Board}
			head++

			channels[i].ToWorker <- Message{Tag: Work, Payload: wire.EncodeSubproblem(sp)}
			return
		}

		channels[i].ToWorker <- Message{Tag: Finished, Payload: encodeCost(bestCost)}
		retired++
	}

	for i := range channels {
		dispatchOrRetire(i)
	}

	for retired < len(channels) {
		select {
		case c := <-completions:
			if c.msg.Tag != Done {
				return search.Solution{}, fmt.Errorf("cluster: worker %v sent unexpected tag %v", c.worker, c.msg.Tag)
			}

			b, _, err := wire.DecodeBoard(c.msg.Payload)
			if err != nil {
				return search.Solution{}, fmt.Errorf("cluster: worker %v: %w", c.worker, err)
			}

			if inc.ConsiderExternal(b) {
				bestBoard = inc.BestBoard()
				bestCost = bestBoard.Cost()
				logw.Infof(ctx, "cluster: worker %v improved bestCost to %v", c.worker, bestCost)
			}

			dispatchOrRetire(c.worker)

		case <-ctx.Done():
			return search.Solution{}, ctx.Err()
		}
	}

	logw.Infof(ctx, "cluster: all %v workers retired, bestCost=%v", len(channels), costString(bestCost))
	return search.FromBoard(bestBoard, 0), nil
}

type completion struct {
	worker int
	msg    Message
}

// encodeCost serializes the final best cost carried on the Finished
// message as a little-endian int32.
func encodeCost(cost int) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(int32(cost)))
	return buf
}

func costString(cost int) string {
	if cost == board.MaxCost {
		return "+inf"
	}
	return fmt.Sprintf("%v", cost)
}
