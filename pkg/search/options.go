package search

import (
	"fmt"
	"runtime"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Options hold the search tunables. The zero value uses the documented
// defaults.
type Options struct {
	// FrontierPlies is the depth of BFS expansion used by Generate to
	// produce subproblems for distribution. Default 3.
	FrontierPlies lang.Optional[int]
	// TaskThreshold is the depth at which child branches stop spawning
	// new tasks in Parallel. Default 4.
	TaskThreshold lang.Optional[int]
	// WorkerThreads bounds the number of concurrently running subtree
	// tasks in Parallel. Default runtime.GOMAXPROCS(0).
	WorkerThreads lang.Optional[int]
}

const (
	defaultFrontierPlies = 3
	defaultTaskThreshold = 4
)

// ResolvedFrontierPlies returns FrontierPlies, or the default of 3 if unset.
func (o Options) ResolvedFrontierPlies() int {
	if v, ok := o.FrontierPlies.V(); ok {
		return v
	}
	return defaultFrontierPlies
}

// ResolvedTaskThreshold returns TaskThreshold, or the default of 4 if unset.
func (o Options) ResolvedTaskThreshold() int {
	if v, ok := o.TaskThreshold.V(); ok {
		return v
	}
	return defaultTaskThreshold
}

// ResolvedWorkerThreads returns WorkerThreads, or runtime.GOMAXPROCS(0) if unset.
func (o Options) ResolvedWorkerThreads() int {
	if v, ok := o.WorkerThreads.V(); ok {
		return v
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) String() string {
	return fmt.Sprintf("{frontierPlies=%v, taskThreshold=%v, workerThreads=%v}",
		o.ResolvedFrontierPlies(), o.ResolvedTaskThreshold(), o.ResolvedWorkerThreads())
}
