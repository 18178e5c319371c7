// Package sudoku encodes 9×9 sudoku puzzles as DIMACS CNF problems and
// decodes solver models back into grids.
//
// A cell is the propositional variable 100*row + 10*col + digit, with
// row, col, and digit all in 1..9, so variable 357 reads "row 3, column
// 5 holds 7". The solver itself knows nothing of this encoding.
package sudoku

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Rules returns the standard 9×9 sudoku constraints as DIMACS clause
// lines: every cell holds at least one and at most one digit, and no
// digit repeats within a row, column, or 3×3 box.
func Rules() string {
	var b strings.Builder
	// Each cell holds at least one digit.
	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			for d := 1; d <= 9; d++ {
				fmt.Fprintf(&b, "%d ", cellVar(r, c, d))
			}
			b.WriteString("0\n")
		}
	}
	// Each cell holds at most one digit.
	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			for d := 1; d <= 9; d++ {
				for e := d + 1; e <= 9; e++ {
					fmt.Fprintf(&b, "%d %d 0\n", -cellVar(r, c, d), -cellVar(r, c, e))
				}
			}
		}
	}
	// No digit repeats within a row or a column.
	for d := 1; d <= 9; d++ {
		for r := 1; r <= 9; r++ {
			for c := 1; c <= 9; c++ {
				for e := c + 1; e <= 9; e++ {
					fmt.Fprintf(&b, "%d %d 0\n", -cellVar(r, c, d), -cellVar(r, e, d))
					fmt.Fprintf(&b, "%d %d 0\n", -cellVar(c, r, d), -cellVar(e, r, d))
				}
			}
		}
	}
	// No digit repeats within a 3×3 box.
	for d := 1; d <= 9; d++ {
		for br := 0; br < 3; br++ {
			for bc := 0; bc < 3; bc++ {
				for i := 0; i < 9; i++ {
					for j := i + 1; j < 9; j++ {
						r1, c1 := 3*br+i/3+1, 3*bc+i%3+1
						r2, c2 := 3*br+j/3+1, 3*bc+j%3+1
						if r1 == r2 || c1 == c2 {
							continue // already covered by row/column rules
						}
						fmt.Fprintf(&b, "%d %d 0\n", -cellVar(r1, c1, d), -cellVar(r2, c2, d))
					}
				}
			}
		}
	}
	return b.String()
}

// XRules returns the additional constraints for X-sudoku: no digit
// repeats on either main diagonal. Appended to Rules.
func XRules() string {
	var b strings.Builder
	for i := 1; i <= 9; i++ {
		for d := 1; d <= 9; d++ {
			curr := cellVar(i, i, d)
			for j := 1; j <= 9; j++ {
				if j != i {
					fmt.Fprintf(&b, "%d %d 0\n", -curr, -cellVar(j, j, d))
				}
			}
		}
	}
	for i := 1; i <= 9; i++ {
		for d := 1; d <= 9; d++ {
			curr := cellVar(i, 10-i, d)
			for j := 1; j <= 9; j++ {
				if j != i {
					fmt.Fprintf(&b, "%d %d 0\n", -curr, -cellVar(j, 10-j, d))
				}
			}
		}
	}
	return b.String()
}

// Encode turns an 81-character puzzle string (row-major; '.' or '0' for
// a blank cell) into a DIMACS problem: the given rules followed by one
// unit clause per given digit.
func Encode(puzzle, rules string) (string, error) {
	puzzle = strings.TrimSpace(puzzle)
	if len(puzzle) != 81 {
		return "", errors.Errorf("puzzle has %d cells, want 81", len(puzzle))
	}
	var b strings.Builder
	b.WriteString(rules)
	for i := 0; i < 81; i++ {
		ch := puzzle[i]
		switch {
		case ch == '.' || ch == '0':
		case ch >= '1' && ch <= '9':
			fmt.Fprintf(&b, "%d 0\n", cellVar(i/9+1, i%9+1, int(ch-'0')))
		default:
			return "", errors.Errorf("cell %d: invalid character %q", i, ch)
		}
	}
	return b.String(), nil
}

// LoadPuzzles reads one 81-character puzzle per line, skipping blank
// lines. Invalid lines are reported together, one error per line, while
// the valid puzzles are still returned.
func LoadPuzzles(r io.Reader) ([]string, error) {
	var puzzles []string
	var merr *multierror.Error
	s := bufio.NewScanner(r)
	lineno := 0
	for s.Scan() {
		lineno++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		if len(line) != 81 {
			merr = multierror.Append(merr, errors.Errorf("line %d: puzzle has %d cells, want 81", lineno, len(line)))
			continue
		}
		if i := strings.IndexFunc(line, func(r rune) bool {
			return r != '.' && (r < '0' || r > '9')
		}); i >= 0 {
			merr = multierror.Append(merr, errors.Errorf("line %d: invalid character %q", lineno, line[i]))
			continue
		}
		puzzles = append(puzzles, line)
	}
	if err := s.Err(); err != nil {
		merr = multierror.Append(merr, errors.Wrap(err, "reading puzzles"))
	}
	return puzzles, merr.ErrorOrNil()
}

func cellVar(row, col, digit int) int {
	return 100*row + 10*col + digit
}
