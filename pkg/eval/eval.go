// Package eval scores candidate destination squares so the search tries
// high-value captures and near-pawn positions first. Fixed small-integer
// weights; no learning, no runtime tuning.
package eval

import "github.com/bkpsolver/bkpsolver/pkg/board"

// KnightOffsets are the 8 relative (row, col) jumps of a knight.
var KnightOffsets = [8][2]int{
	{-2, -1}, {-2, 1},
	{-1, 2}, {1, 2},
	{2, 1}, {2, -1},
	{1, -2}, {-1, -2},
}

var kingAdjacent = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Knight scores a candidate knight destination (row, col) on b:
//
//	3  (row,col) holds a pawn
//	2  some knight move from (row,col) would reach a pawn
//	1  some king-adjacent cell to (row,col) holds a pawn
//	0  otherwise
func Knight(b *board.Board, row, col int) int {
	if b.CellAt(row, col) == board.Pawn {
		return 3
	}
	for _, d := range KnightOffsets {
		if b.CellAt(row+d[0], col+d[1]) == board.Pawn {
			return 2
		}
	}
	for _, d := range kingAdjacent {
		if b.CellAt(row+d[0], col+d[1]) == board.Pawn {
			return 1
		}
	}
	return 0
}

// Diagonals are the four ray directions a bishop moves along.
var Diagonals = [4][2]int{
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Bishop scores a candidate bishop destination (row, col) on b:
//
//	2  (row,col) holds a pawn
//	1  some diagonal from (row,col) reaches a pawn before the knight or edge
//	0  otherwise
func Bishop(b *board.Board, row, col int) int {
	if b.CellAt(row, col) == board.Pawn {
		return 2
	}
	for _, d := range Diagonals {
		for i := 1; ; i++ {
			c := b.CellAt(row+i*d[0], col+i*d[1])
			if c == board.Invalid || c == board.Knight {
				break
			}
			if c == board.Pawn {
				return 1
			}
		}
	}
	return 0
}
