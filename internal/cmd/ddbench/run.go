// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddbench

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/big"
	"time"

	"github.com/dalzilio/ddbench/bdd"
	"github.com/dalzilio/ddbench/internal/cnf"
	"github.com/dalzilio/ddbench/internal/diag"
	entrypoint "github.com/dalzilio/ddbench/internal/platform/cmd"
	"github.com/dalzilio/ddbench/life"
	"github.com/dalzilio/ddbench/pigeonhole"
	"github.com/dalzilio/ddbench/queens"
	"github.com/dalzilio/ddbench/tictactoe"
)

// Run executes the benchmark selected by cfg and writes its report to out.
// Intermediate sizes are logged to errOut in verbose mode.
func Run(ctx context.Context, cfg Config, out, errOut io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceBench, func(ctx context.Context) error {
		r, err := run(ctx, cfg, errOut)
		if err != nil {
			return err
		}
		if err := r.write(out, cfg.Lang); err != nil {
			return err
		}
		if r.checker != "" && !r.agrees {
			return fmt.Errorf("%s disagrees with the BDD result", r.checker)
		}
		return nil
	})
}

func run(ctx context.Context, cfg Config, errOut io.Writer) (*report, error) {
	d := &diag.Diagnostics{}
	if cfg.Verbose {
		d.Logger = log.New(errOut, "   | ", 0)
	}
	checker, err := cnf.NewChecker(cfg.Check)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	var r *report
	switch cfg.Benchmark {
	case BenchLife:
		r, err = runLife(ctx, cfg, d)
	case BenchTicTacToe:
		r, err = runTicTacToe(ctx, cfg, d)
	case BenchQueens:
		r, err = runQueens(ctx, cfg, d, checker)
	case BenchPigeonhole:
		r, err = runPigeonhole(ctx, cfg, d, checker)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownBenchmark, cfg.Benchmark)
	}
	if err != nil {
		return nil, err
	}
	r.diag = d
	r.elapsed = time.Since(start)
	return r, nil
}

func (cfg Config) newBDD(varnum int) (*bdd.BDD, error) {
	return bdd.New(varnum, bdd.Nodesize(cfg.Nodesize), bdd.Cachesize(cfg.Cachesize), bdd.Cacheratio(25))
}

func size(n, def int) int {
	if n == 0 {
		return def
	}
	return n
}

func runLife(ctx context.Context, cfg Config, d *diag.Diagnostics) (*report, error) {
	g, err := life.NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	vm, err := life.NewVarMap(g, cfg.Symmetry)
	if err != nil {
		return nil, err
	}
	dd, err := cfg.newBDD(vm.Varcount())
	if err != nil {
		return nil, err
	}
	count, err := life.GardenOfEden(ctx, dd, vm, life.Options{Boundary: cfg.Boundary, Diagnostics: d})
	if err != nil {
		return nil, err
	}
	return &report{
		title: fmt.Sprintf("Game of Life %d x %d (symmetry %s, boundary %s)", g.Rows, g.Cols, cfg.Symmetry, cfg.Boundary),
		variables: []variables{
			{"pre", vm.VarcountOf(life.Pre)},
			{"post", vm.VarcountOf(life.Post)},
		},
		label: "garden of eden",
		count: count,
		dd:    dd,
	}, nil
}

func runTicTacToe(ctx context.Context, cfg Config, d *diag.Diagnostics) (*report, error) {
	n := size(cfg.N, tictactoe.DefaultCrosses)
	dd, err := cfg.newBDD(tictactoe.Varnum)
	if err != nil {
		return nil, err
	}
	count, err := tictactoe.Count(ctx, dd, n, d)
	if err != nil {
		return nil, err
	}
	return &report{
		title:     fmt.Sprintf("Tic-Tac-Toe with %d crosses", n),
		variables: []variables{{"cells", tictactoe.Varnum}},
		label:     "draws",
		count:     count,
		dd:        dd,
	}, nil
}

func runQueens(ctx context.Context, cfg Config, d *diag.Diagnostics, checker cnf.Checker) (*report, error) {
	n := size(cfg.N, queens.DefaultSize)
	dd, err := cfg.newBDD(n * n)
	if err != nil {
		return nil, err
	}
	count, err := queens.Count(ctx, dd, n, d)
	if err != nil {
		return nil, err
	}
	r := &report{
		title:     fmt.Sprintf("%d-Queens", n),
		variables: []variables{{"squares", n * n}},
		label:     "solutions",
		count:     count,
		dd:        dd,
	}
	if checker != nil {
		if err := r.check(ctx, checker, queens.CNF(n), count.Sign() > 0, count); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func runPigeonhole(ctx context.Context, cfg Config, d *diag.Diagnostics, checker cnf.Checker) (*report, error) {
	n := size(cfg.N, pigeonhole.DefaultHoles)
	f := pigeonhole.CNF(n)
	dd, err := cfg.newBDD(f.Varnum)
	if err != nil {
		return nil, err
	}
	sat, err := cnf.Solve(ctx, dd, f, d)
	if err != nil {
		return nil, err
	}
	r := &report{
		title:     fmt.Sprintf("Pigeonhole principle, %d pigeons in %d holes", n+1, n),
		variables: []variables{{"placements", f.Varnum}},
		label:     "satisfiable",
		sat:       &sat,
		dd:        dd,
	}
	if checker != nil {
		if err := r.check(ctx, checker, f, sat, nil); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// check runs checker on f and records whether it agrees with the BDD
// results. The model count is only compared when checker can count.
func (r *report) check(ctx context.Context, checker cnf.Checker, f *cnf.Formula, sat bool, count *big.Int) error {
	start := time.Now()
	res, err := checker.Satisfiable(ctx, f)
	if err != nil {
		return fmt.Errorf("%s: %w", checker.Name(), err)
	}
	r.checker = checker.Name()
	r.agrees = res == sat
	if c, ok := checker.(cnf.Counter); ok && count != nil && r.agrees {
		models, err := c.CountModels(ctx, f)
		if err != nil {
			return fmt.Errorf("%s: %w", checker.Name(), err)
		}
		r.agrees = count.Cmp(big.NewInt(int64(models))) == 0
	}
	r.checkTime = time.Since(start)
	return nil
}
