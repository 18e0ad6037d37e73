package search_test

import (
	"testing"

	"github.com/bkpsolver/bkpsolver/pkg/board"
	"github.com/bkpsolver/bkpsolver/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateExpandsExactlyPliesDeep(t *testing.T) {
	cells := []board.Cell{
		board.Bishop, board.Empty, board.Empty,
		board.Empty, board.Pawn, board.Empty,
		board.Empty, board.Empty, board.Knight,
	}
	b, err := board.New(3, 6, cells)
	require.NoError(t, err)

	f := search.Generate(search.Root(b), 2)

	require.NotEmpty(t, f.Nodes)
	for _, n := range f.Nodes {
		assert.Equal(t, 2, n.Depth)
	}
}

func TestGenerateReturnsEarlySolutionWithoutStoppingExpansion(t *testing.T) {
	// the pawn sits on the bishop's own diagonal, so the very first ply
	// clears the board -- well before the requested 3-ply frontier.
	cells := []board.Cell{
		board.Bishop, board.Empty, board.Empty,
		board.Empty, board.Pawn, board.Empty,
		board.Empty, board.Empty, board.Knight,
	}
	b, err := board.New(3, 6, cells)
	require.NoError(t, err)

	f := search.Generate(search.Root(b), 3)

	require.NotNil(t, f.EarlySolution)
	assert.Equal(t, 0, f.EarlySolution.PawnCount())
	// the full 3-ply frontier is still produced despite the early
	// solution surfacing along the way.
	require.NotEmpty(t, f.Nodes)
	for _, n := range f.Nodes {
		assert.Equal(t, 3, n.Depth)
	}
}

func TestGenerateZeroPliesReturnsRootOnly(t *testing.T) {
	cells := []board.Cell{
		board.Bishop, board.Empty, board.Empty,
		board.Empty, board.Empty, board.Empty,
		board.Empty, board.Empty, board.Knight,
	}
	b, err := board.New(3, 6, cells)
	require.NoError(t, err)

	f := search.Generate(search.Root(b), 0)

	require.Len(t, f.Nodes, 1)
	assert.Same(t, b, f.Nodes[0].Board)
}
