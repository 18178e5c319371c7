package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/mkoolen/dapper"
)

func main() {
	s1 := flag.Bool("S1", false, "random branching (no heuristic)")
	s2 := flag.Bool("S2", false, "Satz lookahead heuristic")
	s3 := flag.Bool("S3", false, "LEFV heuristic")
	seed := flag.Int64("seed", 0, "random seed")
	verbose := flag.Bool("v", false, "verbose solver diagnostics")
	trace := flag.Bool("vv", false, "per-decision trace (implies -v)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `Dapper: a DPLL SAT solver.

Usage:

  dapper (-S1 | -S2 | -S3) [-seed n] [-v | -vv] input.cnf

Dapper reads a problem in the DIMACS CNF format and decides its
satisfiability. Exactly one strategy flag must be given:

  -S1   random branching
  -S2   Satz lookahead heuristic
  -S3   LEFV (last encountered free variable) heuristic

If the problem is satisfiable, a satisfying assignment is written next
to the input with its extension replaced by .out, one "<literal> 0" line
per variable. If it is unsatisfiable the output file is left empty.
`)
	}
	flag.Parse()

	var heuristic dapper.Heuristic
	switch n := count(*s1, *s2, *s3); {
	case n != 1:
		flag.Usage()
		os.Exit(1)
	case *s1:
		heuristic = dapper.Random
	case *s2:
		heuristic = dapper.Satz
	case *s3:
		heuristic = dapper.LEFV
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	inPath := flag.Arg(0)
	outPath := strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".out"

	level := hclog.Warn
	if *verbose {
		level = hclog.Debug
	}
	if *trace {
		level = hclog.Trace
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "dapper",
		Level: level,
	})

	f, err := os.Open(inPath)
	if err != nil {
		fatal(errors.Wrap(err, "opening input"))
	}
	cnf, err := dapper.ParseDIMACS(f)
	f.Close()
	if err != nil {
		fatal(errors.Wrap(err, "reading input as DIMACS CNF"))
	}

	solver := &dapper.Solver{
		Heuristic: heuristic,
		Seed:      *seed,
		Logger:    logger,
	}
	sat := solver.Solve(cnf)

	out, err := os.Create(outPath)
	if err != nil {
		fatal(errors.Wrap(err, "creating output"))
	}
	if sat {
		err = dapper.WriteSolution(out, cnf)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fatal(errors.Wrap(err, "writing solution"))
	}

	if sat {
		fmt.Printf("Problem is satisfiable. Solution written to %s\n", outPath)
	} else {
		fmt.Println("Problem is unsatisfiable")
	}
}

func count(flags ...bool) int {
	n := 0
	for _, b := range flags {
		if b {
			n++
		}
	}
	return n
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "dapper:", err)
	os.Exit(1)
}
