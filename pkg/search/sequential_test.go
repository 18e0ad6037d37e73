package search_test

import (
	"context"
	"testing"

	"github.com/bkpsolver/bkpsolver/pkg/board"
	"github.com/bkpsolver/bkpsolver/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

// the bishop, which opens, can never reach the pawn beside it on the
// same rank; it must make a non-capturing first move to (1,1), after
// which the knight jumps from (2,2) onto the pawn. The optimum is 2.
func onePawnBoard(t *testing.T) *board.Board {
	t.Helper()
	// S P -
	// - - -
	// - - J
	cells := []board.Cell{
		board.Bishop, board.Pawn, board.Empty,
		board.Empty, board.Empty, board.Empty,
		board.Empty, board.Empty, board.Knight,
	}
	b, err := board.New(3, 5, cells)
	require.NoError(t, err)
	return b
}

func TestSequentialFindsOptimalSolution(t *testing.T) {
	ctx := context.Background()
	b := onePawnBoard(t)

	inc := search.NewIncumbent(b)
	counter := new(atomic.Uint64)
	search.Sequential(ctx, search.Root(b), inc, counter)

	best := inc.BestBoard()
	assert.Equal(t, 0, best.PawnCount())
	assert.Equal(t, 2, best.Cost())
	assert.Greater(t, int(counter.Load()), 0)
}

func TestSequentialRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := onePawnBoard(t)
	inc := search.NewIncumbent(b)
	counter := new(atomic.Uint64)

	search.Sequential(ctx, search.Root(b), inc, counter)

	// cancelled before any useful work: the incumbent stays at the
	// initial, unsolved board.
	assert.Equal(t, board.MaxCost, inc.BestBoard().Cost())
}
