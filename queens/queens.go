// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package queens counts the solutions of the N-queens problem: the ways of
// placing n queens on an n x n chess board so that no two queens attack each
// other.
//
// The board has one variable per square, numbered row by row. Constraints
// are built with the direct constructions of package build: exactly one
// queen on each row, and at most one on each column and diagonal.
package queens

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dalzilio/ddbench/bdd"
	"github.com/dalzilio/ddbench/build"
	"github.com/dalzilio/ddbench/internal/cnf"
	"github.com/dalzilio/ddbench/internal/diag"
)

// DefaultSize is the usual size of the board for this benchmark.
const DefaultSize = 8

var tracer = otel.Tracer("github.com/dalzilio/ddbench/queens")

// Var returns the variable of square (row, col) on an n x n board.
func Var(n, row, col int) int {
	return n*row + col
}

// Lines returns the rows, columns and diagonals of an n x n board, each as a
// list of variables. Diagonals with a single square are omitted.
func Lines(n int) (rows, others [][]int) {
	for r := 0; r < n; r++ {
		var row, col []int
		for c := 0; c < n; c++ {
			row = append(row, Var(n, r, c))
			col = append(col, Var(n, c, r))
		}
		rows = append(rows, row)
		others = append(others, col)
	}
	// diagonals r-c = d and anti-diagonals r+c = d
	for d := -(n - 2); d <= n-2; d++ {
		var line []int
		for r := 0; r < n; r++ {
			if c := r - d; c >= 0 && c < n {
				line = append(line, Var(n, r, c))
			}
		}
		others = append(others, line)
	}
	for d := 1; d <= 2*n-3; d++ {
		var anti []int
		for r := 0; r < n; r++ {
			if c := d - r; c >= 0 && c < n {
				anti = append(anti, Var(n, r, c))
			}
		}
		others = append(others, anti)
	}
	return rows, others
}

// Count returns the number of solutions on an n x n board. The BDD must have
// at least n*n variables. The diagnostics d may be nil.
func Count(ctx context.Context, dd *bdd.BDD, n int, d *diag.Diagnostics) (*big.Int, error) {
	if n < 1 {
		return nil, fmt.Errorf("queens: invalid board size %d", n)
	}
	if dd.Varnum() < n*n {
		return nil, fmt.Errorf("queens: BDD has %d variables, need %d", dd.Varnum(), n*n)
	}
	ctx, span := tracer.Start(ctx, "queens.Count", trace.WithAttributes(attribute.Int("size", n)))
	defer span.End()
	rows, others := Lines(n)
	res := dd.True()
	add := func(name string, c bdd.Node, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("queens: %s: %w", name, err)
		}
		res = dd.And(res, c)
		if err := dd.Err(); err != nil {
			return fmt.Errorf("queens: %s: %w", name, err)
		}
		if d.Enabled() {
			d.Observe(name, dd.Nodecount(res))
		}
		return nil
	}
	start := time.Now()
	// rows are added from the bottom of the order, like the chain builders
	for i := n - 1; i >= 0; i-- {
		c, err := build.Threshold(dd, rows[i], 1)
		if err := add(fmt.Sprintf("row %d", i), c, err); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}
	for i, l := range others {
		c, err := build.AtMost(dd, l, 1)
		if err := add(fmt.Sprintf("line %d", i), c, err); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}
	d.Apply(start)
	start = time.Now()
	count := dd.SatcountVars(res, n*n)
	d.Count(start)
	if err := dd.Err(); err != nil {
		return nil, fmt.Errorf("queens: counting: %w", err)
	}
	return count, nil
}

// CNF returns the N-queens problem as a formula over n*n variables, where
// square (row, col) is variable Var(n, row, col)+1. Each row has at least one
// queen and each pair of squares on a common line excludes each other.
func CNF(n int) *cnf.Formula {
	f := cnf.New(n * n)
	rows, others := Lines(n)
	for _, row := range rows {
		clause := make([]int, len(row))
		for i, x := range row {
			clause[i] = x + 1
		}
		f.MustAdd(clause...)
	}
	for _, lines := range [][][]int{rows, others} {
		for _, l := range lines {
			for i := 0; i < len(l); i++ {
				for j := i + 1; j < len(l); j++ {
					f.MustAdd(-(l[i] + 1), -(l[j] + 1))
				}
			}
		}
	}
	return f
}
