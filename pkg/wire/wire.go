// Package wire implements the flat little-endian byte encoding used to
// transport Boards and Subproblems between a scheduler and its workers.
// The encoding is self-describing and round-trips exactly, independent
// of any particular transport.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/bkpsolver/bkpsolver/pkg/board"
)

// ErrShortBuffer indicates a payload ended before a fixed-width field
// could be read in full -- a short read or corrupt payload.
var ErrShortBuffer = errors.New("wire: buffer too short")

// ErrInvariant indicates a deserialized payload failed an internal
// consistency check.
var ErrInvariant = errors.New("wire: invariant violation")

const (
	bishopByte byte = 'S'
	knightByte byte = 'J'
)

func sideByte(s board.Side) byte {
	if s == board.BishopToMove {
		return bishopByte
	}
	return knightByte
}

func parseSideByte(b byte) (board.Side, error) {
	switch b {
	case bishopByte:
		return board.BishopToMove, nil
	case knightByte:
		return board.KnightToMove, nil
	default:
		return 0, fmt.Errorf("%w: invalid side byte %v", ErrInvariant, b)
	}
}

// Subproblem is the wire-level shape of a dispatched unit of work:
// depth, the bound the worker should prune against, whose move it is,
// and the board itself.
type Subproblem struct {
	Depth int
	Bound int
	Side  board.Side
	Board *board.Board
}

// EncodeSubproblem serializes sp as:
//
//	depth:int32 | bestCost:int32 | sideToMove:byte('S'|'J') | board_blob
//
// A Bound of board.MaxCost (+inf) does not fit an int32 and is carried as
// math.MaxInt32; DecodeSubproblem maps it back to board.MaxCost.
func EncodeSubproblem(sp Subproblem) []byte {
	boardBuf := EncodeBoard(sp.Board)

	bound := sp.Bound
	if bound > math.MaxInt32 {
		bound = math.MaxInt32
	}

	buf := make([]byte, 0, 4+4+1+len(boardBuf))
	buf = appendInt32(buf, sp.Depth)
	buf = appendInt32(buf, bound)
	buf = append(buf, sideByte(sp.Side))
	buf = append(buf, boardBuf...)
	return buf
}

// DecodeSubproblem deserializes a Subproblem produced by EncodeSubproblem.
func DecodeSubproblem(buf []byte) (Subproblem, error) {
	depth, buf, err := readInt32(buf)
	if err != nil {
		return Subproblem{}, err
	}
	bound, buf, err := readInt32(buf)
	if err != nil {
		return Subproblem{}, err
	}
	if bound == math.MaxInt32 {
		bound = board.MaxCost
	}
	if len(buf) < 1 {
		return Subproblem{}, ErrShortBuffer
	}
	side, err := parseSideByte(buf[0])
	if err != nil {
		return Subproblem{}, err
	}
	buf = buf[1:]

	b, _, err := DecodeBoard(buf)
	if err != nil {
		return Subproblem{}, err
	}

	return Subproblem{Depth: depth, Bound: bound, Side: side, Board: b}, nil
}

// EncodeBoard serializes b as a board_blob:
//
//	N²:int32 | N:int32 | pawnCnt:int32 | minDepth:int32 | maxDepth:int32
//	| grid:bytes[N²] | bishop:piece | knight:piece
//	| moveLogLen:int32 | (move:10 bytes) × moveLogLen
func EncodeBoard(b *board.Board) []byte {
	n := b.N()
	total := n * n
	moves := b.Moves()

	buf := make([]byte, 0, 4*5+total+2*9+4+10*len(moves))
	buf = appendInt32(buf, total)
	buf = appendInt32(buf, n)
	buf = appendInt32(buf, b.PawnCount())
	buf = appendInt32(buf, b.MinDepth())
	buf = appendInt32(buf, b.MaxDepth())

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			buf = append(buf, b.CellAt(r, c).String()[0])
		}
	}

	buf = appendPiece(buf, b.Bishop(), board.Bishop)
	buf = appendPiece(buf, b.Knight(), board.Knight)

	buf = appendInt32(buf, len(moves))
	for _, m := range moves {
		buf = appendInt32(buf, m.Row)
		buf = appendInt32(buf, m.Col)
		buf = appendInt16(buf, boolToInt16(m.Captured))
	}

	return buf
}

// DecodeBoard deserializes a board_blob and returns the board along with
// the number of bytes consumed.
func DecodeBoard(buf []byte) (*board.Board, int, error) {
	orig := buf

	total, buf, err := readInt32(buf)
	if err != nil {
		return nil, 0, err
	}
	n, buf, err := readInt32(buf)
	if err != nil {
		return nil, 0, err
	}
	if n <= 0 || n*n != total {
		return nil, 0, fmt.Errorf("%w: N²=%v does not match N=%v", ErrInvariant, total, n)
	}
	pawnCnt, buf, err := readInt32(buf)
	if err != nil {
		return nil, 0, err
	}
	minDepth, buf, err := readInt32(buf)
	if err != nil {
		return nil, 0, err
	}
	maxDepth, buf, err := readInt32(buf)
	if err != nil {
		return nil, 0, err
	}

	if len(buf) < total {
		return nil, 0, ErrShortBuffer
	}
	grid := make([]board.Cell, total)
	for i := 0; i < total; i++ {
		c, ok := board.ParseCell(rune(buf[i]))
		if !ok {
			return nil, 0, fmt.Errorf("%w: invalid grid byte %v at %v", ErrInvariant, buf[i], i)
		}
		grid[i] = c
	}
	buf = buf[total:]

	bishopSq, buf, err := readPiece(buf)
	if err != nil {
		return nil, 0, err
	}
	knightSq, buf, err := readPiece(buf)
	if err != nil {
		return nil, 0, err
	}

	moveLogLen, buf, err := readInt32(buf)
	if err != nil {
		return nil, 0, err
	}
	if moveLogLen < 0 {
		return nil, 0, fmt.Errorf("%w: negative move log length %v", ErrInvariant, moveLogLen)
	}
	moves := make([]board.Move, moveLogLen)
	for i := range moves {
		row, rest, err := readInt32(buf)
		if err != nil {
			return nil, 0, err
		}
		col, rest, err := readInt32(rest)
		if err != nil {
			return nil, 0, err
		}
		took, rest, err := readInt16(rest)
		if err != nil {
			return nil, 0, err
		}
		moves[i] = board.Move{Row: row, Col: col, Captured: took != 0}
		buf = rest
	}

	b, err := board.Restore(n, maxDepth, minDepth, grid, moves)
	if err != nil {
		return nil, 0, err
	}
	if b.PawnCount() != pawnCnt {
		return nil, 0, fmt.Errorf("%w: pawn count %v does not match grid (%v)", ErrInvariant, pawnCnt, b.PawnCount())
	}
	if b.Bishop() != bishopSq {
		return nil, 0, fmt.Errorf("%w: bishop position %v does not match grid (%v)", ErrInvariant, bishopSq, b.Bishop())
	}
	if b.Knight() != knightSq {
		return nil, 0, fmt.Errorf("%w: knight position %v does not match grid (%v)", ErrInvariant, knightSq, b.Knight())
	}

	return b, len(orig) - len(buf), nil
}

func appendPiece(buf []byte, sq board.Square, typ board.Cell) []byte {
	buf = appendInt32(buf, sq.Row)
	buf = appendInt32(buf, sq.Col)
	return append(buf, typ.String()[0])
}

func readPiece(buf []byte) (board.Square, []byte, error) {
	row, buf, err := readInt32(buf)
	if err != nil {
		return board.Square{}, nil, err
	}
	col, buf, err := readInt32(buf)
	if err != nil {
		return board.Square{}, nil, err
	}
	if len(buf) < 1 {
		return board.Square{}, nil, ErrShortBuffer
	}
	return board.Square{Row: row, Col: col}, buf[1:], nil
}

func boolToInt16(b bool) int {
	if b {
		return 1
	}
	return 0
}

func appendInt32(buf []byte, v int) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(int32(v)))
	return append(buf, tmp[:]...)
}

func appendInt16(buf []byte, v int) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], uint16(int16(v)))
	return append(buf, tmp[:]...)
}

func readInt32(buf []byte) (int, []byte, error) {
	if len(buf) < 4 {
		return 0, nil, ErrShortBuffer
	}
	v := int(int32(binary.LittleEndian.Uint32(buf)))
	return v, buf[4:], nil
}

func readInt16(buf []byte) (int, []byte, error) {
	if len(buf) < 2 {
		return 0, nil, ErrShortBuffer
	}
	v := int(int16(binary.LittleEndian.Uint16(buf)))
	return v, buf[2:], nil
}
