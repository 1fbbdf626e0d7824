// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cnf

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/crillab/gophersat/solver"
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// ErrUnknownChecker is returned by NewChecker for an unknown backend.
var ErrUnknownChecker = errors.New("unknown checker")

// Checker decides the satisfiability of a formula with a SAT solver.
type Checker interface {
	Name() string
	Satisfiable(ctx context.Context, f *Formula) (bool, error)
}

// Counter is a Checker that can also count models.
type Counter interface {
	Checker
	CountModels(ctx context.Context, f *Formula) (int, error)
}

// NewChecker returns the checker with the given name, either "gophersat" or
// "gini". It returns nil, and no error, for "none" or the empty string.
func NewChecker(name string) (Checker, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return nil, nil
	case "gophersat":
		return Gophersat{}, nil
	case "gini":
		return Gini{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownChecker, name)
}

// Gophersat is a Counter backed by github.com/crillab/gophersat. The solver
// does not support cancellation, so the context is only checked before
// starting.
type Gophersat struct{}

func (Gophersat) Name() string { return "gophersat" }

// problem returns nil when f has no clauses left after simplification.
func (Gophersat) problem(ctx context.Context, f *Formula) (*solver.Problem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clauses := f.simplified()
	if len(clauses) == 0 {
		return nil, nil
	}
	return solver.ParseSlice(clauses), nil
}

// Satisfiable implements Checker.
func (g Gophersat) Satisfiable(ctx context.Context, f *Formula) (bool, error) {
	pb, err := g.problem(ctx, f)
	if err != nil || pb == nil {
		return err == nil, err
	}
	if pb.Status == solver.Unsat {
		return false, nil
	}
	switch solver.New(pb).Solve() {
	case solver.Sat:
		return true, nil
	case solver.Unsat:
		return false, nil
	}
	return false, errors.New("gophersat: undetermined result")
}

// CountModels implements Counter. Models are counted over variables 1 to the
// largest variable occurring in f. Each model found is excluded by a blocking
// clause before solving again.
func (g Gophersat) CountModels(ctx context.Context, f *Formula) (int, error) {
	pb, err := g.problem(ctx, f)
	if err != nil {
		return 0, err
	}
	if pb == nil {
		return 1, nil
	}
	clauses := f.simplified()
	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		pb := solver.ParseSlice(clauses)
		if pb.Status == solver.Unsat {
			return count, nil
		}
		s := solver.New(pb)
		switch s.Solve() {
		case solver.Unsat:
			return count, nil
		case solver.Indet:
			return count, errors.New("gophersat: undetermined result")
		}
		count++
		clauses = append(clauses, blocking(s.Model()))
	}
}

// blocking returns the clause excluding model, where model[i] is the value of
// variable i+1.
func blocking(model []bool) []int {
	c := make([]int, len(model))
	for i, v := range model {
		if v {
			c[i] = -(i + 1)
		} else {
			c[i] = i + 1
		}
	}
	return c
}

// Gini is a Checker backed by github.com/go-air/gini. When the context has a
// deadline, the search runs in the background and is stopped at the deadline.
type Gini struct{}

func (Gini) Name() string { return "gini" }

// Satisfiable implements Checker.
func (Gini) Satisfiable(ctx context.Context, f *Formula) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	clauses := f.simplified()
	s := gini.NewVc(f.Varnum, len(clauses))
	for _, c := range clauses {
		if len(c) == 0 {
			return false, nil
		}
		for _, l := range c {
			s.Add(z.Dimacs2Lit(l))
		}
		s.Add(z.LitNull)
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return satisfiable(s.Solve())
	}
	res := s.GoSolve().Try(time.Until(deadline))
	if res == 0 {
		return false, fmt.Errorf("gini: %w", context.DeadlineExceeded)
	}
	return satisfiable(res)
}

func satisfiable(res int) (bool, error) {
	switch res {
	case 1:
		return true, nil
	case -1:
		return false, nil
	}
	return false, errors.New("gini: undetermined result")
}
