// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package tictactoe counts the positions of a 4x4x4 game of tic-tac-toe,
// with a given number of crosses, where neither player has a full line.
//
// The board has one variable per cell, true for a cross and false for a
// nought. A position is a draw when every line of four cells holds between
// one and three crosses.
package tictactoe

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
	"github.com/dalzilio/ddbench/internal/diag"
)

// Side is the size of the board in each dimension.
const Side = 4

// Varnum is the number of variables, one for each cell of the board.
const Varnum = Side * Side * Side

// DefaultCrosses is the usual number of crosses for this benchmark.
const DefaultCrosses = 20

var tracer = otel.Tracer("github.com/dalzilio/ddbench/tictactoe")

// Var returns the variable of cell (i, j, k).
func Var(i, j, k int) int {
	return Side*Side*i + Side*j + k
}

// Line is a set of four aligned cells, given by their variables.
type Line [Side]int

// Lines returns the 76 lines of the board. Lines with closer variables come
// first, so that conjoining them in order keeps intermediate diagrams small.
func Lines() []Line {
	var res []Line
	add := func(f func(t int) int) {
		var l Line
		for t := 0; t < Side; t++ {
			l[t] = f(t)
		}
		res = append(res, l)
	}
	const m = Side - 1
	for i := 0; i < Side; i++ {
		for j := 0; j < Side; j++ {
			add(func(t int) int { return Var(i, j, t) })
		}
	}
	for i := 0; i < Side; i++ {
		add(func(t int) int { return Var(i, t, m-t) })
	}
	for i := 0; i < Side; i++ {
		for k := 0; k < Side; k++ {
			add(func(t int) int { return Var(i, t, k) })
		}
	}
	for i := 0; i < Side; i++ {
		add(func(t int) int { return Var(i, t, t) })
	}
	add(func(t int) int { return Var(t, m-t, m-t) })
	add(func(t int) int { return Var(t, m-t, t) })
	for j := 0; j < Side; j++ {
		add(func(t int) int { return Var(t, j, m-t) })
	}
	for j := 0; j < Side; j++ {
		for k := 0; k < Side; k++ {
			add(func(t int) int { return Var(t, j, k) })
		}
	}
	for j := 0; j < Side; j++ {
		add(func(t int) int { return Var(t, j, t) })
	}
	for k := 0; k < Side; k++ {
		add(func(t int) int { return Var(t, m-t, k) })
	}
	for k := 0; k < Side; k++ {
		add(func(t int) int { return Var(t, t, k) })
	}
	add(func(t int) int { return Var(t, t, m-t) })
	add(func(t int) int { return Var(t, t, t) })
	return res
}

// Init returns the positions with exactly n crosses.
func Init(dd *bdd.BDD, n int) (bdd.Node, error) {
	vars := make([]int, Varnum)
	for i := range vars {
		vars[i] = i
	}
	return build.Threshold(dd, vars, n)
}

// NotWinning returns the positions where line l holds at least one cross and
// one nought.
func NotWinning(dd *bdd.BDD, l Line) (bdd.Node, error) {
	return build.Range(dd, l[:], 1, Side-1)
}

// Count returns the number of draw positions with n crosses. The BDD must
// have exactly Varnum variables. The diagnostics d may be nil.
func Count(ctx context.Context, dd *bdd.BDD, n int, d *diag.Diagnostics) (*big.Int, error) {
	if dd.Varnum() != Varnum {
		return nil, fmt.Errorf("tictactoe: BDD has %d variables, need %d", dd.Varnum(), Varnum)
	}
	ctx, span := tracer.Start(ctx, "tictactoe.Count", trace.WithAttributes(attribute.Int("crosses", n)))
	defer span.End()
	start := time.Now()
	res, err := Init(dd, n)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	d.Apply(start)
	if d.Enabled() {
		d.Observe("init", dd.Nodecount(res))
	}
	for i, l := range Lines() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("tictactoe: line %d: %w", i, err)
		}
		start := time.Now()
		c, err := NotWinning(dd, l)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		res = dd.And(res, c)
		d.Apply(start)
		if err := dd.Err(); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("tictactoe: line %d: %w", i, err)
		}
		if d.Enabled() {
			d.Observe(fmt.Sprintf("line %d", i), dd.Nodecount(res))
		}
	}
	start = time.Now()
	count := dd.Satcount(res)
	d.Count(start)
	if err := dd.Err(); err != nil {
		return nil, fmt.Errorf("tictactoe: counting: %w", err)
	}
	return count, nil
}
