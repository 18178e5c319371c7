// Package dapper implements a SAT solver for propositional formulas in
// conjunctive normal form using the classic DPLL backtracking procedure:
// unit propagation, pure literal elimination, and a pluggable branching
// heuristic (random, last-encountered-free-variable, or a Satz-style
// lookahead).
package dapper

import "sort"

// A CNF holds a formula together with the solver's working state: the
// active clauses, the partial assignment, and per-literal occurrence
// counts.
//
// Clauses and literals use the DIMACS convention: a literal is a nonzero
// integer whose sign encodes polarity, and a clause is a slice of
// distinct literals interpreted as a disjunction. A zero-length clause
// denotes falsum.
type CNF struct {
	// Clauses is the set of active clauses, i.e. those not yet
	// discharged by the current assignment.
	Clauses [][]int

	// Assign maps each variable to +1 (true), -1 (false), or 0
	// (unassigned). Missing keys read as unassigned.
	Assign map[int]int

	// Variables lists every variable mentioned by the input, sorted
	// ascending. It is fixed after parsing and shared between copies.
	Variables []int

	// Occurrences counts, for each signed literal, the active clauses
	// it appears in. Simplify keeps it consistent with Clauses.
	Occurrences map[int]int

	// UnitAssignments counts assignments made by unit propagation.
	UnitAssignments int

	// lefv is the clause most recently seen by the reducer to contain
	// a falsified literal, recorded before reduction. LefvSplit
	// branches inside it.
	lefv []int
}

// NewCNF builds a formula state from a clause list. Clauses are used as
// given; ParseDIMACS is the usual constructor and additionally folds
// tautologies and duplicate literals.
func NewCNF(clauses [][]int) *CNF {
	c := &CNF{
		Clauses:     clauses,
		Assign:      make(map[int]int),
		Occurrences: make(map[int]int),
	}
	seen := make(map[int]bool)
	for _, cls := range clauses {
		for _, l := range cls {
			c.Occurrences[l]++
			if v := abs(l); !seen[v] {
				seen[v] = true
				c.Variables = append(c.Variables, v)
			}
		}
	}
	sort.Ints(c.Variables)
	return c
}

// Copy returns an independent snapshot of the formula state. The sorted
// Variables slice is immutable after parsing and is shared.
func (c *CNF) Copy() *CNF {
	d := &CNF{
		Clauses:         make([][]int, len(c.Clauses)),
		Assign:          make(map[int]int, len(c.Assign)),
		Variables:       c.Variables,
		Occurrences:     make(map[int]int, len(c.Occurrences)),
		UnitAssignments: c.UnitAssignments,
	}
	for i, cls := range c.Clauses {
		d.Clauses[i] = append([]int(nil), cls...)
	}
	for v, a := range c.Assign {
		d.Assign[v] = a
	}
	for l, n := range c.Occurrences {
		d.Occurrences[l] = n
	}
	d.lefv = append([]int(nil), c.lefv...)
	return d
}

// AddUnit appends the singleton clause [l]. This is how the engine
// asserts a decision; the next Simplify propagates it.
func (c *CNF) AddUnit(l int) {
	c.Clauses = append(c.Clauses, []int{l})
}

// Model returns one signed integer per variable, in ascending variable
// order. Variables the search never forced are free and reported
// positive; any such completion satisfies the formula.
func (c *CNF) Model() []int {
	model := make([]int, len(c.Variables))
	for i, v := range c.Variables {
		if c.Assign[v] < 0 {
			model[i] = -v
		} else {
			model[i] = v
		}
	}
	return model
}

func (c *CNF) hasEmptyClause() bool {
	for _, cls := range c.Clauses {
		if len(cls) == 0 {
			return true
		}
	}
	return false
}

// unassigned returns the unassigned variables in ascending order.
func (c *CNF) unassigned() []int {
	var free []int
	for _, v := range c.Variables {
		if c.Assign[v] == 0 {
			free = append(free, v)
		}
	}
	return free
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}
