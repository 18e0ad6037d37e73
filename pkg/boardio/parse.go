// Package boardio parses the initial-board text resource. It is a thin
// convenience for the CLI, not part of the search engine's tested core.
package boardio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bkpsolver/bkpsolver/pkg/board"
)

// Parse reads the initial board from r: a first line "N maxDepth",
// followed by N lines of N characters from {J, S, P, -}. Whitespace line
// terminators are ignored. Exactly one J and one S must be present
// (enforced downstream by board.New).
func Parse(r io.Reader) (*board.Board, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("boardio: missing header line: %w", scanErr(scanner))
	}

	var n, maxDepth int
	if _, err := fmt.Sscanf(strings.TrimSpace(scanner.Text()), "%d %d", &n, &maxDepth); err != nil {
		return nil, fmt.Errorf("boardio: invalid header %q: %w", scanner.Text(), err)
	}

	grid := make([]board.Cell, 0, n*n)
	for row := 0; row < n; row++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("boardio: expected %v rows, got %v: %w", n, row, scanErr(scanner))
		}
		line := strings.TrimRight(scanner.Text(), "\r\n \t")
		if len(line) != n {
			return nil, fmt.Errorf("boardio: row %v has length %v, want %v", row, len(line), n)
		}
		for _, r := range line {
			c, ok := board.ParseCell(r)
			if !ok {
				return nil, fmt.Errorf("boardio: invalid cell character %q on row %v", r, row)
			}
			grid = append(grid, c)
		}
	}

	return board.New(n, maxDepth, grid)
}

func scanErr(scanner *bufio.Scanner) error {
	if err := scanner.Err(); err != nil {
		return err
	}
	return io.ErrUnexpectedEOF
}
