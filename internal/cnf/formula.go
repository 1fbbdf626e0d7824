// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package cnf holds formulas in conjunctive normal form, solves them with a
// BDD, one clause at a time, and cross-checks the results with SAT solvers.
package cnf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrLiteral is returned when adding a clause with a literal that does not
// match a variable of the formula.
var ErrLiteral = errors.New("invalid literal")

// Formula is a conjunction of clauses over variables 1 to Varnum. Literals
// use the DIMACS convention: v for variable v and -v for its negation.
type Formula struct {
	Varnum  int
	Clauses [][]int
}

// New returns an empty formula over varnum variables.
func New(varnum int) *Formula {
	return &Formula{Varnum: varnum}
}

// Add appends the clause made of lits. The slice is copied.
func (f *Formula) Add(lits ...int) error {
	for _, l := range lits {
		if l == 0 || l > f.Varnum || -l > f.Varnum {
			return fmt.Errorf("%w: %d with %d variables", ErrLiteral, l, f.Varnum)
		}
	}
	f.Clauses = append(f.Clauses, append([]int(nil), lits...))
	return nil
}

// MustAdd is like Add but panics on error.
func (f *Formula) MustAdd(lits ...int) {
	if err := f.Add(lits...); err != nil {
		panic(err)
	}
}

// WriteDimacs writes f in the DIMACS CNF format.
func (f *Formula) WriteDimacs(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p cnf %d %d\n", f.Varnum, len(f.Clauses))
	for _, c := range f.Clauses {
		for _, l := range c {
			fmt.Fprintf(bw, "%d ", l)
		}
		fmt.Fprintln(bw, "0")
	}
	return bw.Flush()
}

// simplified returns the clauses of f without tautologies and repeated
// literals.
func (f *Formula) simplified() [][]int {
	res := make([][]int, 0, len(f.Clauses))
outer:
	for _, c := range f.Clauses {
		seen := make(map[int]bool, len(c))
		clause := make([]int, 0, len(c))
		for _, l := range c {
			if seen[-l] {
				continue outer
			}
			if !seen[l] {
				seen[l] = true
				clause = append(clause, l)
			}
		}
		res = append(res, clause)
	}
	return res
}

// lastUse returns, for each clause, the variables that do not occur in any
// later clause.
func (f *Formula) lastUse() [][]int {
	last := make(map[int]int)
	for i, c := range f.Clauses {
		for _, l := range c {
			last[variable(l)] = i
		}
	}
	res := make([][]int, len(f.Clauses))
	for v, i := range last {
		res[i] = append(res[i], v)
	}
	return res
}

func variable(l int) int {
	if l < 0 {
		return -l
	}
	return l
}
