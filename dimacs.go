package dapper

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseDIMACS parses text in the DIMACS CNF format and returns the
// initial formula state.
//
// Lines beginning with 'c' (comments) and 'p' (the problem header) are
// skipped; comments may appear anywhere and the problem line is not
// validated against the clauses. A line containing a single '%' ends the
// input (some CNF collections attach trailer data after it). Every other
// non-blank line encodes exactly one clause: whitespace-separated signed
// nonzero integers terminated by a single trailing 0. A clause missing
// its terminating 0, or carrying a 0 before the end of the line, is a
// parse error.
//
// Duplicate literals within a clause are collapsed. A clause containing
// a variable in both polarities is folded: both polarities are removed,
// and a clause emptied entirely by folding is dropped as a tautology. A
// bare "0" line, by contrast, is kept as the (unsatisfiable) empty
// clause. Variables appearing only in dropped tautologies still enter
// the variable set.
func ParseDIMACS(r io.Reader) (*CNF, error) {
	c := &CNF{
		Assign:      make(map[int]int),
		Occurrences: make(map[int]int),
	}
	vars := make(map[int]bool)
	s := bufio.NewScanner(r)
	lineno := 0
	for s.Scan() {
		lineno++
		line := strings.TrimSpace(s.Text())
		if len(line) == 0 || line[0] == 'c' || line[0] == 'p' {
			continue
		}
		if line == "%" {
			break
		}
		fields := strings.Fields(line)
		var clause []int
		terminated := false
		for i, field := range fields {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: invalid literal", lineno)
			}
			if n == 0 {
				if i != len(fields)-1 {
					return nil, errors.Errorf("line %d: clause terminated before end of line", lineno)
				}
				terminated = true
				break
			}
			vars[abs(n)] = true
			switch {
			case contains(clause, n):
				// Duplicate literal; drop it.
			case contains(clause, -n):
				// Tautology fold: the clause loses both polarities.
				clause = remove(clause, -n)
			default:
				clause = append(clause, n)
			}
		}
		if !terminated {
			return nil, errors.Errorf("line %d: clause missing terminating 0", lineno)
		}
		if len(clause) == 0 && len(fields) > 1 {
			// Emptied purely by tautology folding; not a real clause.
			continue
		}
		for _, l := range clause {
			c.Occurrences[l]++
		}
		c.Clauses = append(c.Clauses, clause)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading DIMACS input")
	}
	for v := range vars {
		c.Variables = append(c.Variables, v)
	}
	sort.Ints(c.Variables)
	return c, nil
}

// WriteDIMACS writes a clause list in the DIMACS CNF format, with a
// problem line derived from the clauses themselves.
func WriteDIMACS(w io.Writer, clauses [][]int) error {
	maxVar := 0
	for _, cls := range clauses {
		for _, l := range cls {
			if v := abs(l); v > maxVar {
				maxVar = v
			}
		}
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p cnf %d %d\n", maxVar, len(clauses))
	for _, cls := range clauses {
		for _, l := range cls {
			fmt.Fprintf(bw, "%d ", l)
		}
		fmt.Fprintln(bw, "0")
	}
	return bw.Flush()
}

// WriteSolution writes a satisfying assignment: one signed integer per
// variable, each followed by " 0" on its own line, in ascending variable
// order. Callers handling UNSAT write nothing.
func WriteSolution(w io.Writer, c *CNF) error {
	bw := bufio.NewWriter(w)
	for _, l := range c.Model() {
		fmt.Fprintf(bw, "%d 0\n", l)
	}
	return bw.Flush()
}

func contains(clause []int, l int) bool {
	for _, x := range clause {
		if x == l {
			return true
		}
	}
	return false
}

func remove(clause []int, l int) []int {
	for i, x := range clause {
		if x == l {
			return append(clause[:i], clause[i+1:]...)
		}
	}
	return clause
}
