// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cnf

import (
	"context"
	"fmt"
	"math/big"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dalzilio/ddbench/bdd"
	"github.com/dalzilio/ddbench/build"
	"github.com/dalzilio/ddbench/internal/diag"
)

var tracer = otel.Tracer("github.com/dalzilio/ddbench/internal/cnf")

// conjoin builds the conjunction of the clauses of f, in order. When quantify
// is set, each variable is quantified right after the last clause where it
// occurs.
func conjoin(ctx context.Context, dd *bdd.BDD, f *Formula, quantify bool, d *diag.Diagnostics) (bdd.Node, error) {
	if dd.Varnum() < f.Varnum {
		return nil, fmt.Errorf("cnf: BDD has %d variables, need %d", dd.Varnum(), f.Varnum)
	}
	var last [][]int
	if quantify {
		last = f.lastUse()
	}
	res := dd.True()
	for i, c := range f.Clauses {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cnf: clause %d: %w", i, err)
		}
		start := time.Now()
		clause, err := build.Clause(dd, c)
		if err != nil {
			return nil, fmt.Errorf("cnf: clause %d: %w", i, err)
		}
		res = dd.And(res, clause)
		d.Apply(start)
		if quantify && len(last[i]) > 0 {
			start = time.Now()
			done := mapset.NewThreadUnsafeSet[int]()
			for _, v := range last[i] {
				done.Add(v - 1)
			}
			res = dd.ExistFunc(res, func(level int) bool { return done.Contains(level) })
			d.Exists(start)
		}
		if err := dd.Err(); err != nil {
			return nil, fmt.Errorf("cnf: clause %d: %w", i, err)
		}
		if d.Enabled() {
			d.Observe(fmt.Sprintf("clause %d", i), dd.Nodecount(res))
		}
		if *res == 0 {
			// no clause can make it true again
			break
		}
	}
	return res, nil
}

// Solve tells if f is satisfiable. Clauses are conjoined in order and each
// variable is quantified as soon as it does not occur in the remaining
// clauses, so the diagram only keeps track of the variables still in use.
func Solve(ctx context.Context, dd *bdd.BDD, f *Formula, d *diag.Diagnostics) (bool, error) {
	ctx, span := tracer.Start(ctx, "cnf.Solve", trace.WithAttributes(
		attribute.Int("variables", f.Varnum),
		attribute.Int("clauses", len(f.Clauses)),
	))
	defer span.End()
	res, err := conjoin(ctx, dd, f, true, d)
	if err != nil {
		span.RecordError(err)
		return false, err
	}
	return *res != 0, nil
}

// Count returns the number of models of f, over its Varnum variables.
func Count(ctx context.Context, dd *bdd.BDD, f *Formula, d *diag.Diagnostics) (*big.Int, error) {
	ctx, span := tracer.Start(ctx, "cnf.Count", trace.WithAttributes(
		attribute.Int("variables", f.Varnum),
		attribute.Int("clauses", len(f.Clauses)),
	))
	defer span.End()
	res, err := conjoin(ctx, dd, f, false, d)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	start := time.Now()
	count := dd.SatcountVars(res, f.Varnum)
	d.Count(start)
	if err := dd.Err(); err != nil {
		return nil, fmt.Errorf("cnf: counting: %w", err)
	}
	return count, nil
}
