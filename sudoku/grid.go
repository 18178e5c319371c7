package sudoku

import (
	"strings"

	"github.com/pkg/errors"
)

// A Grid is a decoded 9×9 sudoku; 0 marks an empty cell.
type Grid [9][9]int

// Decode reconstructs a grid from a solver model: every positive
// literal 100r+10c+d places digit d at (r, c). It fails on literals
// outside the cell encoding or on two digits claiming one cell.
func Decode(model []int) (Grid, error) {
	var g Grid
	for _, l := range model {
		if l < 0 {
			continue
		}
		r, c, d := l/100, l/10%10, l%10
		if r < 1 || r > 9 || c < 1 || c > 9 || d < 1 || d > 9 {
			return Grid{}, errors.Errorf("variable %d is not a cell", l)
		}
		if prev := g[r-1][c-1]; prev != 0 && prev != d {
			return Grid{}, errors.Errorf("cell (%d,%d) assigned both %d and %d", r, c, prev, d)
		}
		g[r-1][c-1] = d
	}
	return g, nil
}

func (g Grid) String() string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			b.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 {
				b.WriteByte(' ')
				if c%3 == 0 {
					b.WriteString("| ")
				}
			}
			if g[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte(byte('0' + g[r][c]))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Valid reports whether the grid is a complete, rule-abiding solution:
// every cell filled, no digit repeated in a row, column, or box.
func (g Grid) Valid() bool {
	var rows, cols, boxes [9][10]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			d := g[r][c]
			if d < 1 || d > 9 {
				return false
			}
			box := 3*(r/3) + c/3
			if rows[r][d] || cols[c][d] || boxes[box][d] {
				return false
			}
			rows[r][d] = true
			cols[c][d] = true
			boxes[box][d] = true
		}
	}
	return true
}
