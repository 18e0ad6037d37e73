package wire_test

import (
	"testing"

	"github.com/bkpsolver/bkpsolver/pkg/board"
	"github.com/bkpsolver/bkpsolver/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBoard(t *testing.T) *board.Board {
	t.Helper()
	cells := []board.Cell{
		board.Bishop, board.Pawn, board.Empty,
		board.Empty, board.Empty, board.Empty,
		board.Empty, board.Empty, board.Knight,
	}
	b, err := board.New(3, 6, cells)
	require.NoError(t, err)
	b.ApplyBishopMove(1, 1)
	return b
}

func TestBoardRoundTrip(t *testing.T) {
	b := sampleBoard(t)

	buf := wire.EncodeBoard(b)
	decoded, n, err := wire.DecodeBoard(buf)
	require.NoError(t, err)

	assert.Equal(t, len(buf), n)
	assert.Equal(t, b.N(), decoded.N())
	assert.Equal(t, b.PawnCount(), decoded.PawnCount())
	assert.Equal(t, b.MinDepth(), decoded.MinDepth())
	assert.Equal(t, b.MaxDepth(), decoded.MaxDepth())
	assert.Equal(t, b.Bishop(), decoded.Bishop())
	assert.Equal(t, b.Knight(), decoded.Knight())
	assert.Equal(t, b.Moves(), decoded.Moves())
}

func TestSubproblemRoundTrip(t *testing.T) {
	b := sampleBoard(t)
	sp := wire.Subproblem{Depth: 1, Bound: 4, Side: board.KnightToMove, Board: b}

	buf := wire.EncodeSubproblem(sp)
	decoded, err := wire.DecodeSubproblem(buf)
	require.NoError(t, err)

	assert.Equal(t, sp.Depth, decoded.Depth)
	assert.Equal(t, sp.Bound, decoded.Bound)
	assert.Equal(t, sp.Side, decoded.Side)
	assert.Equal(t, b.Moves(), decoded.Board.Moves())
}

func TestDecodeBoardRejectsShortBuffer(t *testing.T) {
	b := sampleBoard(t)
	buf := wire.EncodeBoard(b)

	_, _, err := wire.DecodeBoard(buf[:len(buf)-3])
	assert.ErrorIs(t, err, wire.ErrShortBuffer)
}

func TestDecodeBoardRejectsInconsistentGrid(t *testing.T) {
	b := sampleBoard(t)
	buf := wire.EncodeBoard(b)

	// corrupt the grid byte for (0,0) -- empty since the bishop moved off
	// it -- into a pawn, so the reconstructed board's pawn count no longer
	// matches the encoded pawnCnt field.
	gridOffset := 4 * 5 // N², N, pawnCnt, minDepth, maxDepth
	buf[gridOffset] = 'P'

	_, _, err := wire.DecodeBoard(buf)
	assert.ErrorIs(t, err, wire.ErrInvariant)
}

func TestDecodeSubproblemRejectsInvalidSideByte(t *testing.T) {
	b := sampleBoard(t)
	sp := wire.Subproblem{Depth: 1, Bound: 4, Side: board.KnightToMove, Board: b}
	buf := wire.EncodeSubproblem(sp)

	buf[8] = 'Z' // sideToMove byte, after two int32 fields

	_, err := wire.DecodeSubproblem(buf)
	assert.ErrorIs(t, err, wire.ErrInvariant)
}
