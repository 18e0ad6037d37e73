// Package movegen enumerates legal candidate moves for the side to move,
// ordered by the heuristic evaluator so the search tries promising
// captures first.
package movegen

import (
	"sort"

	"github.com/bkpsolver/bkpsolver/pkg/board"
	"github.com/bkpsolver/bkpsolver/pkg/eval"
)

// Candidate is a transient record produced by the move generator and
// consumed by the search's move ordering. Not retained across calls.
type Candidate struct {
	Row, Col, Score int
}

// Knight enumerates the knight's candidate destinations: the 8 relative
// (±1,±2)/(±2,±1) offsets, accepted iff the target is empty or a pawn.
// Returned in descending score order; ties preserve generation order.
func Knight(b *board.Board) []Candidate {
	at := b.Knight()

	cand := make([]Candidate, 0, 8)
	for _, d := range eval.KnightOffsets {
		row, col := at.Row+d[0], at.Col+d[1]
		switch b.CellAt(row, col) {
		case board.Empty, board.Pawn:
			cand = append(cand, Candidate{Row: row, Col: col, Score: eval.Knight(b, row, col)})
		}
	}
	return orderByScore(cand)
}

// Bishop enumerates the bishop's candidate destinations along its four
// diagonals. Starting one step out, each ray is walked until an
// off-board or knight cell terminates it: an empty cell is a valid
// destination and the ray continues; a pawn cell is a valid destination
// and the ray stops there. Returned in descending score order; ties
// preserve generation order.
func Bishop(b *board.Board) []Candidate {
	at := b.Bishop()

	cand := make([]Candidate, 0, 2*b.N()-2)
	for _, d := range eval.Diagonals {
		for i := 1; ; i++ {
			row, col := at.Row+i*d[0], at.Col+i*d[1]
			c := b.CellAt(row, col)
			if c == board.Invalid || c == board.Knight {
				break
			}
			cand = append(cand, Candidate{Row: row, Col: col, Score: eval.Bishop(b, row, col)})
			if c == board.Pawn {
				break
			}
		}
	}
	return orderByScore(cand)
}

// For generates the candidates for whichever side is to move.
func For(b *board.Board, side board.Side) []Candidate {
	if side == board.BishopToMove {
		return Bishop(b)
	}
	return Knight(b)
}

func orderByScore(cand []Candidate) []Candidate {
	sort.SliceStable(cand, func(i, j int) bool {
		return cand[i].Score > cand[j].Score
	})
	return cand
}
