// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pigeonhole

import (
	"context"
	"testing"

	"github.com/dalzilio/ddbench/bdd"
	"github.com/dalzilio/ddbench/internal/cnf"
)

func TestCNF(t *testing.T) {
	for n := 1; n <= 5; n++ {
		f := CNF(n)
		if f.Varnum != n*(n+1) {
			t.Errorf("CNF(%d): expected %d variables, actual %d", n, n*(n+1), f.Varnum)
		}
		if expected := (n + 1) + n*(n+1)*n/2; len(f.Clauses) != expected {
			t.Errorf("CNF(%d): expected %d clauses, actual %d", n, expected, len(f.Clauses))
		}
	}
}

func TestUnsatisfiable(t *testing.T) {
	for n := 1; n <= 6; n++ {
		f := CNF(n)
		dd, err := bdd.New(f.Varnum, bdd.Nodesize(10000), bdd.Cachesize(3000))
		if err != nil {
			t.Fatal(err)
		}
		sat, err := cnf.Solve(context.Background(), dd, f, nil)
		if err != nil {
			t.Fatal(err)
		}
		if sat {
			t.Errorf("Solve(CNF(%d)): expected unsatisfiable", n)
		}
		if n > 5 {
			continue
		}
		for _, c := range []cnf.Checker{cnf.Gophersat{}, cnf.Gini{}} {
			sat, err := c.Satisfiable(context.Background(), f)
			if err != nil {
				t.Fatal(err)
			}
			if sat {
				t.Errorf("%s: CNF(%d) is satisfiable", c.Name(), n)
			}
		}
	}
}

func TestEnoughHoles(t *testing.T) {
	// n pigeons in n holes is fine: drop the last pigeon
	n := 4
	f := CNF(n)
	g := cnf.New(f.Varnum)
	for _, c := range f.Clauses {
		keep := true
		for _, l := range c {
			if l > 0 && l > Var(n, n-1, n-1) || l < 0 && -l > Var(n, n-1, n-1) {
				keep = false
			}
		}
		if keep {
			g.MustAdd(c...)
		}
	}
	dd, _ := bdd.New(g.Varnum)
	sat, err := cnf.Solve(context.Background(), dd, g, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !sat {
		t.Errorf("%d pigeons in %d holes: expected satisfiable", n, n)
	}
}
