package dapper

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *CNF {
	t.Helper()
	c, err := ParseDIMACS(strings.NewReader(text))
	require.NoError(t, err)
	return c
}

func TestPropagateUnits(t *testing.T) {
	c := NewCNF([][]int{{1}, {-1, 2}, {-2, 3, 4}})
	require.True(t, c.propagateUnits())
	require.Equal(t, 1, c.Assign[1])
	require.Equal(t, 0, c.Assign[2])
	require.Equal(t, 1, c.UnitAssignments)
	// The unit clause is discharged; the rest wait for reduction.
	require.Equal(t, [][]int{{-1, 2}, {-2, 3, 4}}, c.Clauses)
}

func TestReduce(t *testing.T) {
	c := NewCNF([][]int{{-1, 2}, {-2, 3}, {-3, 1}})
	c.Assign[1] = 1
	c.reduce()
	// {-3, 1} is satisfied, {-1, 2} loses its falsified literal.
	require.Equal(t, [][]int{{2}, {-2, 3}}, c.Clauses)
	require.Equal(t, []int{-1, 2}, c.lefv)
	require.Equal(t, map[int]int{2: 1, -2: 1, 3: 1}, c.Occurrences)
}

func TestSimplifyChain(t *testing.T) {
	// 1 forces 2, which with the pure literal 3 empties the formula.
	c := mustParse(t, "1 0\n-1 2 0\n-2 3 0\n-3 1 0\n")
	require.True(t, c.Simplify())
	require.Equal(t, 1, c.Assign[1])
	require.Equal(t, 1, c.Assign[2])
	require.Equal(t, 1, c.Assign[3])
	require.Equal(t, 2, c.UnitAssignments)
	require.Empty(t, c.Clauses)
}

func TestSimplifyConflict(t *testing.T) {
	c := mustParse(t, "1 0\n-1 0\n")
	require.False(t, c.Simplify())
}

func TestSimplifyPureLiterals(t *testing.T) {
	c := mustParse(t, "1 2 0\n1 3 0\n-2 -3 0\n")
	require.True(t, c.Simplify())
	// 1 is pure positive; assigning it discharges the first two
	// clauses, leaving -2 and -3 pure in the remainder.
	require.Equal(t, 1, c.Assign[1])
	require.Equal(t, -1, c.Assign[2])
	require.Equal(t, -1, c.Assign[3])
	require.Empty(t, c.Clauses)
}

func TestSimplifyDetectsEmptyClause(t *testing.T) {
	c := mustParse(t, "1 0\n2 0\n-1 -2 0\n")
	require.True(t, c.Simplify())
	require.True(t, c.hasEmptyClause())
}

func TestSimplifyRecordsLefvClause(t *testing.T) {
	c := mustParse(t, "1 0\n-1 2 -3 0\n-2 3 0\n")
	require.True(t, c.Simplify())
	// The middle clause lost its falsified literal -1; its original
	// form is remembered for LEFV branching.
	require.Equal(t, []int{-1, 2, -3}, c.lefv)
	require.Equal(t, [][]int{{2, -3}, {-2, 3}}, c.Clauses)
}

// Calling Simplify twice must yield the same state as calling it once.
func TestSimplifyIdempotent(t *testing.T) {
	texts := []string{
		"1 2 0\n-1 3 0\n-2 -3 0\n",
		"1 0\n-1 2 0\n-2 3 4 0\n-3 -4 5 0\n",
		"1 2 3 0\n-1 -2 0\n-1 -3 0\n-2 -3 0\n",
		"1 -1 2 0\n-2 3 0\n",
	}
	for seed := int64(0); seed < 20; seed++ {
		var b strings.Builder
		require.NoError(t, WriteDIMACS(&b, makeRandomSat(seed, 8, 20)))
		texts = append(texts, b.String())
	}
	for _, text := range texts {
		c := mustParse(t, text)
		c.Simplify()
		once := c.Copy()
		c.Simplify()
		if diff := cmp.Diff(c, once, cmp.AllowUnexported(CNF{}), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("second Simplify changed state (-got, +want):\n%s\ninput:\n%s", diff, text)
		}
	}
}

// After a simplification fixpoint the occurrence counts must match the
// active clauses exactly.
func TestSimplifyOccurrenceIntegrity(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		problem := makeRandomSat(seed, 10, 30)
		var b strings.Builder
		require.NoError(t, WriteDIMACS(&b, problem))
		c := mustParse(t, b.String())
		c.Simplify()
		want := make(map[int]int)
		for _, cls := range c.Clauses {
			for _, l := range cls {
				want[l]++
			}
		}
		if diff := cmp.Diff(c.Occurrences, want, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("[seed=%d] occurrence counts (-got, +want):\n%s", seed, diff)
		}
	}
}
