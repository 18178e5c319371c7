package dapper

import "math"

// Simplify runs unit propagation, pure literal elimination, and clause
// reduction, in that order, until the active clause count stops
// shrinking. It reports false when it finds a conflict: a unit clause
// contradicting the current assignment. (An empty clause does not stop
// simplification; it survives reduction and the engine detects it.)
//
// After Simplify returns true, no active clause contains an assigned
// variable and Occurrences matches the active clauses exactly.
func (c *CNF) Simplify() bool {
	prev := math.MaxInt
	for len(c.Clauses) < prev {
		prev = len(c.Clauses)
		if !c.propagateUnits() {
			return false
		}
		c.assignPureLiterals()
		c.reduce()
	}
	return true
}

// propagateUnits discharges every unit clause, assigning its literal
// true. It reports false on a conflict, leaving the clause list
// untouched; the caller abandons the state.
func (c *CNF) propagateUnits() bool {
	for _, cls := range c.Clauses {
		if len(cls) != 1 {
			continue
		}
		l := cls[0]
		v, s := abs(l), sign(l)
		if c.Assign[v] == -s {
			return false
		}
		if c.Assign[v] == 0 {
			c.Assign[v] = s
			c.UnitAssignments++
		}
	}
	kept := c.Clauses[:0]
	for _, cls := range c.Clauses {
		if len(cls) != 1 {
			kept = append(kept, cls)
		}
	}
	c.Clauses = kept
	return true
}

// assignPureLiterals assigns every unassigned variable that occurs in
// only one polarity. Occurrence counts must be current (reduce rebuilds
// them), or a stale count would force an invalid assignment.
func (c *CNF) assignPureLiterals() {
	for _, v := range c.Variables {
		if c.Assign[v] != 0 {
			continue
		}
		switch {
		case c.Occurrences[v] > 0 && c.Occurrences[-v] == 0:
			c.Assign[v] = 1
		case c.Occurrences[-v] > 0 && c.Occurrences[v] == 0:
			c.Assign[v] = -1
		}
	}
}

// reduce rebuilds the active clause set under the current assignment:
// satisfied clauses are dropped, falsified literals are removed, and
// occurrence counts are recomputed from the survivors. A clause that
// loses a literal is recorded, in its original form, as the
// last-encountered falsified clause for LefvSplit.
func (c *CNF) reduce() {
	kept := c.Clauses[:0]
	occ := make(map[int]int, len(c.Occurrences))
	for _, cls := range c.Clauses {
		var free []int
		satisfied := false
		reduced := false
		for _, l := range cls {
			switch c.Assign[abs(l)] {
			case sign(l):
				satisfied = true
			case -sign(l):
				reduced = true
			default:
				free = append(free, l)
			}
		}
		if satisfied {
			continue
		}
		for _, l := range free {
			occ[l]++
		}
		kept = append(kept, free)
		if reduced {
			c.lefv = append([]int(nil), cls...)
		}
	}
	c.Clauses = kept
	c.Occurrences = occ
}
