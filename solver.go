package dapper

import (
	"math/rand"

	"github.com/hashicorp/go-hclog"
	"github.com/kr/pretty"
)

// A Solver runs the recursive DPLL search. The zero value solves with
// the Random heuristic, seed 0, and no logging; a Solver is not safe for
// concurrent use.
type Solver struct {
	// Heuristic selects the branching strategy.
	Heuristic Heuristic

	// Seed seeds the pseudo-random source. Given the same seed and
	// input, solves are reproducible: same result, same statistics.
	Seed int64

	// Logger, when non-nil, receives solver diagnostics: problem size
	// and totals at Debug, per-decision tracing with formula dumps at
	// Trace.
	Logger hclog.Logger

	// Splits counts decisions; Backtracks counts first branches that
	// failed. Both accumulate across calls to Solve.
	Splits     int64
	Backtracks int64

	rng *rand.Rand
	log hclog.Logger
}

// Solve reports whether the formula is satisfiable. On SAT the
// satisfying assignment is adopted into c, so c.Model holds a model of
// the original formula. On UNSAT c's clauses and assignment are left in
// a partially simplified state and should not be reused.
func (s *Solver) Solve(c *CNF) bool {
	s.rng = rand.New(rand.NewSource(s.Seed))
	s.log = s.Logger
	if s.log == nil {
		s.log = hclog.NewNullLogger()
	}
	s.log.Debug("solving",
		"variables", len(c.Variables),
		"clauses", len(c.Clauses),
		"heuristic", s.Heuristic.String(),
	)
	leaf, sat := s.solve(c, 0)
	if sat && leaf != c {
		c.Assign = leaf.Assign
		c.UnitAssignments = leaf.UnitAssignments
	}
	s.log.Debug("finished",
		"sat", sat,
		"splits", s.Splits,
		"backtracks", s.Backtracks,
	)
	return sat
}

// solve is the recursive search. It returns the leaf state holding the
// satisfying assignment, or ok=false when the subtree is unsatisfiable.
// Each branch works on its own copy, so a failed branch leaves the
// caller's state untouched.
func (s *Solver) solve(c *CNF, depth int) (leaf *CNF, ok bool) {
	if !c.Simplify() {
		return nil, false
	}
	if len(c.Clauses) == 0 {
		return c, true
	}
	if c.hasEmptyClause() {
		return nil, false
	}

	l := s.split(c)
	s.Splits++
	if s.log.IsTrace() {
		s.log.Trace("split", "literal", l, "depth", depth, "clauses", len(c.Clauses))
		s.log.Trace("state", "formula", pretty.Sprint(c))
	}

	first := c.Copy()
	first.AddUnit(l)
	if leaf, ok := s.solve(first, depth+1); ok {
		return leaf, true
	}

	s.Backtracks++
	if s.log.IsTrace() {
		s.log.Trace("backtrack", "literal", l, "depth", depth)
	}
	second := c.Copy()
	second.AddUnit(-l)
	if leaf, ok := s.solve(second, depth+1); ok {
		return leaf, true
	}
	return nil, false
}

func (s *Solver) split(c *CNF) int {
	switch s.Heuristic {
	case Satz:
		return c.SatzSplit(s.rng)
	case LEFV:
		return c.LefvSplit(s.rng)
	default:
		return c.RandomSplit(s.rng)
	}
}
