// Package board contains the bishop/knight-vs-pawns board representation
// and its raw move application, used by the search packages. Legal move
// generation lives in pkg/movegen.
package board

import (
	"fmt"
	"strings"
)

// Cell is the content of a single square.
type Cell uint8

const (
	Empty Cell = iota
	Pawn
	Bishop
	Knight

	// Invalid is returned by CellAt for an out-of-bounds square. It is not
	// a valid grid value.
	Invalid Cell = 255
)

func ParseCell(r rune) (Cell, bool) {
	switch r {
	case '-':
		return Empty, true
	case 'P':
		return Pawn, true
	case 'S':
		return Bishop, true
	case 'J':
		return Knight, true
	default:
		return Empty, false
	}
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "-"
	case Pawn:
		return "P"
	case Bishop:
		return "S"
	case Knight:
		return "J"
	default:
		return "?"
	}
}

// Square is a zero-based (row, col) coordinate.
type Square struct {
	Row, Col int
}

func (s Square) String() string {
	return fmt.Sprintf("(%v,%v)", s.Row, s.Col)
}

// Side identifies which piece is on move. The root side is always Bishop,
// and sides strictly alternate thereafter.
type Side uint8

const (
	BishopToMove Side = iota
	KnightToMove
)

func (s Side) Opponent() Side {
	if s == BishopToMove {
		return KnightToMove
	}
	return BishopToMove
}

func (s Side) String() string {
	if s == BishopToMove {
		return "bishop"
	}
	return "knight"
}

// Move is a single ply: the destination square and whether it captured a
// pawn. Appended to a Board's move log on every ApplyBishopMove /
// ApplyKnightMove.
type Move struct {
	Row, Col int
	Captured bool
}

func (m Move) String() string {
	if m.Captured {
		return fmt.Sprintf("%v,%v *", m.Row, m.Col)
	}
	return fmt.Sprintf("%v,%v", m.Row, m.Col)
}

// Board holds the grid, piece positions, remaining pawn count and move log
// for one position in the search tree. A Board is immutable from the
// consumer's perspective except via ApplyBishopMove / ApplyKnightMove;
// branches are explored on independent copies produced by Copy, so no undo
// operation is provided.
//
// Not thread-safe: a single Board must not be mutated from more than one
// goroutine. Concurrent exploration always operates on independent copies.
type Board struct {
	n    int
	grid []Cell

	bishop, knight Square
	pawns          int

	// minDepth is the theoretical lower bound on a solution's cost: each
	// ply can capture at most one pawn, so no sequence can be shorter than
	// the initial pawn count.
	minDepth int
	// maxDepth is the caller-supplied hard cutoff.
	maxDepth int

	moves []Move
}

// New constructs a Board from an initial snapshot. grid must have length
// n*n and contain exactly one Bishop cell and one Knight cell.
func New(n, maxDepth int, grid []Cell) (*Board, error) {
	if n <= 0 {
		return nil, fmt.Errorf("board: invalid size %v", n)
	}
	if len(grid) != n*n {
		return nil, fmt.Errorf("board: grid length %v does not match size %v", len(grid), n*n)
	}

	b := &Board{
		n:        n,
		grid:     append([]Cell(nil), grid...),
		maxDepth: maxDepth,
	}

	var sawBishop, sawKnight bool
	for i, c := range b.grid {
		switch c {
		case Bishop:
			if sawBishop {
				return nil, fmt.Errorf("board: more than one bishop")
			}
			sawBishop = true
			b.bishop = Square{Row: i / n, Col: i % n}
		case Knight:
			if sawKnight {
				return nil, fmt.Errorf("board: more than one knight")
			}
			sawKnight = true
			b.knight = Square{Row: i / n, Col: i % n}
		case Pawn:
			b.pawns++
		case Empty:
			// ok
		default:
			return nil, fmt.Errorf("board: invalid cell value %v at index %v", c, i)
		}
	}
	if !sawBishop {
		return nil, fmt.Errorf("board: no bishop on the board")
	}
	if !sawKnight {
		return nil, fmt.Errorf("board: no knight on the board")
	}

	b.minDepth = b.pawns
	return b, nil
}

// Restore reconstructs a Board from its constituent fields, as when
// deserializing a wire payload (pkg/wire). Unlike New, minDepth and the
// move log are taken verbatim rather than recomputed, since minDepth is
// a property of the original puzzle instance (the initial pawn count)
// and must survive moves that have since reduced the pawn count.
func Restore(n, maxDepth, minDepth int, grid []Cell, moves []Move) (*Board, error) {
	b, err := New(n, maxDepth, grid)
	if err != nil {
		return nil, err
	}
	b.minDepth = minDepth
	b.moves = append([]Move(nil), moves...)
	return b, nil
}

// Copy produces an independent deep copy. Search explores branches on
// copies; the original is left untouched.
func (b *Board) Copy() *Board {
	cp := *b
	cp.grid = append([]Cell(nil), b.grid...)
	cp.moves = append([]Move(nil), b.moves...)
	return &cp
}

// N returns the side length of the board.
func (b *Board) N() int {
	return b.n
}

// CellAt returns the cell at (row, col), or Invalid if out of bounds.
func (b *Board) CellAt(row, col int) Cell {
	if row < 0 || col < 0 || row >= b.n || col >= b.n {
		return Invalid
	}
	return b.grid[row*b.n+col]
}

func (b *Board) setAt(row, col int, c Cell) {
	b.grid[row*b.n+col] = c
}

// Bishop returns the bishop's current square.
func (b *Board) Bishop() Square {
	return b.bishop
}

// Knight returns the knight's current square.
func (b *Board) Knight() Square {
	return b.knight
}

// PawnCount returns the number of remaining pawns.
func (b *Board) PawnCount() int {
	return b.pawns
}

// MinDepth returns the theoretical lower bound on a solution's cost.
func (b *Board) MinDepth() int {
	return b.minDepth
}

// MaxDepth returns the caller-supplied hard cutoff.
func (b *Board) MaxDepth() int {
	return b.maxDepth
}

// Moves returns the ordered move log applied to reach this board.
func (b *Board) Moves() []Move {
	return b.moves
}

// Cost returns the number of plies in the move log if the board has no
// pawns left, or math.MaxInt if pawns remain (not yet a solution).
func (b *Board) Cost() int {
	if b.pawns != 0 {
		return maxCost
	}
	return len(b.moves)
}

// maxCost stands in for +infinity in the cost domain: it is reported
// when no capture sequence was found within the caller's depth bound.
const maxCost = int(^uint(0) >> 1)

// MaxCost is the sentinel cost meaning "no solution found within bounds".
const MaxCost = maxCost

func (b *Board) movePiece(cur *Square, typ Cell, row, col int) {
	captured := b.CellAt(row, col) == Pawn
	b.moves = append(b.moves, Move{Row: row, Col: col, Captured: captured})
	if captured {
		b.pawns--
	}
	b.setAt(cur.Row, cur.Col, Empty)
	b.setAt(row, col, typ)
	cur.Row, cur.Col = row, col
}

// ApplyBishopMove is a raw mutator: it updates the grid, the bishop's
// position, the pawn count and the move log. It does not validate that
// (row, col) is a legal destination -- that is the move generator's job.
func (b *Board) ApplyBishopMove(row, col int) Move {
	b.movePiece(&b.bishop, Bishop, row, col)
	return b.moves[len(b.moves)-1]
}

// ApplyKnightMove is the knight counterpart of ApplyBishopMove.
func (b *Board) ApplyKnightMove(row, col int) Move {
	b.movePiece(&b.knight, Knight, row, col)
	return b.moves[len(b.moves)-1]
}

func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "board{n=%v, minDepth=%v, maxDepth=%v, bishop=%v, knight=%v, pawns=%v, plies=%v}\n",
		b.n, b.minDepth, b.maxDepth, b.bishop, b.knight, b.pawns, len(b.moves))
	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n; c++ {
			sb.WriteString(b.CellAt(r, c).String())
			if c+1 < b.n {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
