// Command bkpsolver runs the bishop/knight pawn-capture branch-and-bound
// solver on an initial board read from a file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bkpsolver/bkpsolver/internal/version"
	"github.com/bkpsolver/bkpsolver/pkg/board"
	"github.com/bkpsolver/bkpsolver/pkg/boardio"
	"github.com/bkpsolver/bkpsolver/pkg/cluster"
	"github.com/bkpsolver/bkpsolver/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"go.uber.org/atomic"
)

var (
	mode          = flag.String("mode", "sequential", "Search mode: sequential, parallel, or distributed")
	frontierPlies = flag.Int("frontier-plies", 0, "BFS expansion depth for the distributed frontier (0 = default)")
	taskThreshold = flag.Int("task-threshold", 0, "Depth at which task-parallel fan-out stops (0 = default)")
	workerThreads = flag.Int("worker-threads", 0, "Intra-process task pool size (0 = default)")
	workerCount   = flag.Int("workers", 4, "Number of simulated distributed workers (mode=distributed only)")
	printVersion  = flag.Bool("version", false, "Print the version and exit")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: bkpsolver [options] <board-file>

BKPSOLVER finds the shortest alternating bishop/knight capture sequence
that clears every pawn from the board, within a caller-supplied depth
bound.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *printVersion {
		fmt.Println(version.V)
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		logw.Exitf(ctx, "Failed to open %v: %v", flag.Arg(0), err)
	}
	defer f.Close()

	b, err := boardio.Parse(f)
	if err != nil {
		logw.Exitf(ctx, "Failed to parse %v: %v", flag.Arg(0), err)
	}

	logw.Infof(ctx, "Loaded board: %v", b)

	opt := search.Options{}
	if *frontierPlies > 0 {
		opt.FrontierPlies = lang.Some(*frontierPlies)
	}
	if *taskThreshold > 0 {
		opt.TaskThreshold = lang.Some(*taskThreshold)
	}
	if *workerThreads > 0 {
		opt.WorkerThreads = lang.Some(*workerThreads)
	}

	var sol search.Solution
	switch *mode {
	case "sequential":
		sol = runSequential(ctx, b)
	case "parallel":
		sol, err = runParallel(ctx, b, opt)
	case "distributed":
		sol, err = runDistributed(ctx, b, opt, *workerCount)
	default:
		logw.Exitf(ctx, "Unknown mode %q", *mode)
	}
	if err != nil {
		logw.Exitf(ctx, "Search failed: %v", err)
	}

	printSolution(sol)
}

func runSequential(ctx context.Context, b *board.Board) search.Solution {
	inc := search.NewIncumbent(b)
	counter := new(atomic.Uint64)
	search.Sequential(ctx, search.Root(b), inc, counter)
	return search.FromBoard(inc.BestBoard(), counter.Load())
}

func runParallel(ctx context.Context, b *board.Board, opt search.Options) (search.Solution, error) {
	inc := search.NewIncumbent(b)
	counter := new(atomic.Uint64)
	if err := search.Parallel(ctx, search.Root(b), inc, counter, opt); err != nil {
		return search.Solution{}, err
	}
	return search.FromBoard(inc.BestBoard(), counter.Load()), nil
}

func runDistributed(ctx context.Context, b *board.Board, opt search.Options, workers int) (search.Solution, error) {
	channels := make([]cluster.Channel, workers)
	for i := range channels {
		channels[i] = cluster.NewChannel()
	}

	for i, ch := range channels {
		i, ch := i, ch
		go func() {
			if err := cluster.RunWorker(ctx, i, ch, opt); err != nil {
				logw.Errorf(ctx, "worker %v failed: %v", i, err)
			}
		}()
	}

	return cluster.NewScheduler(opt).Run(ctx, b, channels)
}

func printSolution(sol search.Solution) {
	if sol.Cost == board.MaxCost {
		fmt.Println("no solution within bounds")
	} else {
		fmt.Printf("cost: %v\n", sol.Cost)
	}
	for _, m := range sol.Moves {
		fmt.Println(m)
	}
}
