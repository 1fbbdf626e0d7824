// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cnf

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/go-air/gini"

	"github.com/dalzilio/ddbench/bdd"
)

func newBDD(t *testing.T, varnum int) *bdd.BDD {
	t.Helper()
	dd, err := bdd.New(varnum, bdd.Nodesize(1000), bdd.Cachesize(100))
	if err != nil {
		t.Fatal(err)
	}
	return dd
}

func formula(varnum int, clauses ...[]int) *Formula {
	f := New(varnum)
	for _, c := range clauses {
		f.MustAdd(c...)
	}
	return f
}

var formulaTests = []struct {
	name   string
	f      *Formula
	models int64
}{
	{"empty", formula(3), 8},
	{"unit", formula(3, []int{1}), 4},
	{"xor", formula(2, []int{1, 2}, []int{-1, -2}), 2},
	{"chain", formula(3, []int{-1, 2}, []int{-2, 3}), 4},
	{"tautology", formula(2, []int{1, -1}), 4},
	{"contradiction", formula(1, []int{1}, []int{-1}), 0},
	{"empty clause", formula(2, []int{}), 0},
}

func TestSolveAndCount(t *testing.T) {
	for _, tt := range formulaTests {
		t.Run(tt.name, func(t *testing.T) {
			sat, err := Solve(context.Background(), newBDD(t, tt.f.Varnum), tt.f, nil)
			if err != nil {
				t.Fatal(err)
			}
			if sat != (tt.models > 0) {
				t.Errorf("Solve: expected %v, actual %v", tt.models > 0, sat)
			}
			n, err := Count(context.Background(), newBDD(t, tt.f.Varnum), tt.f, nil)
			if err != nil {
				t.Fatal(err)
			}
			if n.Int64() != tt.models {
				t.Errorf("Count: expected %d, actual %s", tt.models, n)
			}
			for _, c := range []Checker{Gophersat{}, Gini{}} {
				sat, err := c.Satisfiable(context.Background(), tt.f)
				if err != nil {
					t.Fatal(err)
				}
				if sat != (tt.models > 0) {
					t.Errorf("%s: expected %v, actual %v", c.Name(), tt.models > 0, sat)
				}
			}
		})
	}
}

func TestAdd(t *testing.T) {
	f := New(2)
	for _, l := range []int{0, 3, -3} {
		if err := f.Add(1, l); !errors.Is(err, ErrLiteral) {
			t.Errorf("Add(1, %d): expected ErrLiteral, actual %v", l, err)
		}
	}
	if len(f.Clauses) != 0 {
		t.Errorf("invalid clauses were added")
	}
}

func TestLastUse(t *testing.T) {
	f := formula(4, []int{1, 2}, []int{-2, 3}, []int{3, -1}, []int{4})
	last := f.lastUse()
	expected := [][]int{nil, {2}, {1, 3}, {4}}
	for i := range expected {
		seen := map[int]bool{}
		for _, v := range last[i] {
			seen[v] = true
		}
		if len(seen) != len(expected[i]) {
			t.Errorf("clause %d: expected %v, actual %v", i, expected[i], last[i])
		}
		for _, v := range expected[i] {
			if !seen[v] {
				t.Errorf("clause %d: expected %v, actual %v", i, expected[i], last[i])
			}
		}
	}
}

func TestWriteDimacs(t *testing.T) {
	f := formula(3, []int{1, -2}, []int{2, 3}, []int{-3})
	var buf bytes.Buffer
	if err := f.WriteDimacs(&buf); err != nil {
		t.Fatal(err)
	}
	expected := "p cnf 3 3\n1 -2 0\n2 3 0\n-3 0\n"
	if buf.String() != expected {
		t.Errorf("expected %q, actual %q", expected, buf.String())
	}
	g, err := gini.NewDimacs(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if res := g.Solve(); res != 1 {
		t.Errorf("gini on the DIMACS output: expected 1, actual %d", res)
	}
}

func TestNewChecker(t *testing.T) {
	var checkerTests = []struct {
		name     string
		expected string
		err      error
	}{
		{"none", "", nil},
		{"", "", nil},
		{"Gophersat", "gophersat", nil},
		{"gini", "gini", nil},
		{"minisat", "", ErrUnknownChecker},
	}
	for _, tt := range checkerTests {
		c, err := NewChecker(tt.name)
		if !errors.Is(err, tt.err) {
			t.Errorf("NewChecker(%q): expected error %v, actual %v", tt.name, tt.err, err)
			continue
		}
		name := ""
		if c != nil {
			name = c.Name()
		}
		if name != tt.expected {
			t.Errorf("NewChecker(%q): expected %q, actual %q", tt.name, tt.expected, name)
		}
	}
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := formula(2, []int{1, 2})
	if _, err := Solve(ctx, newBDD(t, 2), f, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Solve: expected context.Canceled, actual %v", err)
	}
	if _, err := (Gini{}).Satisfiable(ctx, f); !errors.Is(err, context.Canceled) {
		t.Errorf("Gini: expected context.Canceled, actual %v", err)
	}
}

func TestTooFewVariables(t *testing.T) {
	if _, err := Count(context.Background(), newBDD(t, 2), formula(3, []int{3}), nil); err == nil {
		t.Errorf("expected an error with a BDD too small for the formula")
	}
}

func atMostOne(f *Formula, vars ...int) *Formula {
	for i := range vars {
		for j := i + 1; j < len(vars); j++ {
			f.MustAdd(-vars[i], -vars[j])
		}
	}
	return f
}

func TestGophersatCountModels(t *testing.T) {
	var countTests = []struct {
		name   string
		f      *Formula
		models int
	}{
		{"empty", formula(2), 1},
		{"xor", formula(2, []int{1, 2}, []int{-1, -2}), 2},
		{"at most one", atMostOne(formula(4), 1, 2, 3, 4), 5},
		{"exactly one", atMostOne(formula(3, []int{1, 2, 3}), 1, 2, 3), 3},
		{"exactly one of five", atMostOne(formula(5, []int{1, 2, 3, 4, 5}), 1, 2, 3, 4, 5), 5},
		{"contradiction", formula(1, []int{1}, []int{-1}), 0},
		{"empty clause", formula(2, []int{1, 2}, []int{}), 0},
	}
	for _, tt := range countTests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Gophersat{}.CountModels(context.Background(), tt.f)
			if err != nil {
				t.Fatal(err)
			}
			if n != tt.models {
				t.Errorf("expected %d models, actual %d", tt.models, n)
			}
		})
	}
}
