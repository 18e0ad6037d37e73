package search

import (
	"testing"

	"github.com/bkpsolver/bkpsolver/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallBoard(t *testing.T) *board.Board {
	t.Helper()
	cells := make([]board.Cell, 16)
	for i := range cells {
		cells[i] = board.Empty
	}
	cells[0] = board.Bishop
	cells[5] = board.Pawn
	cells[15] = board.Knight
	b, err := board.New(4, 10, cells)
	require.NoError(t, err)
	return b
}

func TestNewIncumbentStartsAtInfinity(t *testing.T) {
	b := smallBoard(t)
	inc := NewIncumbent(b)

	assert.Equal(t, board.MaxCost, inc.BestCost())
}

func TestNewIncumbentWithBound(t *testing.T) {
	b := smallBoard(t)
	inc := NewIncumbentWithBound(b, 7)

	assert.Equal(t, 7, inc.BestCost())
}

func TestTryCommitAcceptsImprovement(t *testing.T) {
	b := smallBoard(t)
	inc := NewIncumbent(b)

	n := &Node{Board: b.Copy(), Depth: 3, Side: board.BishopToMove}
	n.Board.ApplyBishopMove(1, 1) // captures the only pawn, leaving pawns==0

	assert.True(t, inc.tryCommit(n))
	assert.Equal(t, 3, inc.BestCost())
}

func TestTryCommitRejectsNonImprovement(t *testing.T) {
	b := smallBoard(t)
	inc := NewIncumbentWithBound(b, 2)

	n := &Node{Board: b.Copy(), Depth: 5, Side: board.BishopToMove}
	assert.False(t, inc.tryCommit(n))
	assert.Equal(t, 2, inc.BestCost())
}

func TestConsiderExternalAdoptsOnlyWhenBetter(t *testing.T) {
	b := smallBoard(t)
	inc := NewIncumbent(b)

	worse := b.Copy()
	worse.ApplyBishopMove(0, 1)  // no capture
	worse.ApplyKnightMove(1, 1) // captures the only pawn at depth 2

	assert.True(t, inc.ConsiderExternal(worse))
	assert.Equal(t, 2, inc.BestCost())

	better := b.Copy()
	better.ApplyKnightMove(1, 1) // captures the only pawn at depth 1
	assert.True(t, inc.ConsiderExternal(better))
	assert.Equal(t, 1, inc.BestCost())

	assert.False(t, inc.ConsiderExternal(worse))
	assert.Equal(t, 1, inc.BestCost())
}

func TestBestBoardReturnsIndependentCopy(t *testing.T) {
	b := smallBoard(t)
	inc := NewIncumbent(b)

	cp := inc.BestBoard()
	cp.ApplyBishopMove(1, 1)

	assert.NotEqual(t, cp.Moves(), inc.BestBoard().Moves())
}
