// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddbench

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/dalzilio/ddbench/internal/cnf"
	"github.com/dalzilio/ddbench/life"
)

func parse(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	t.Setenv("DDBENCH_OTEL_ENDPOINT", "")
	return ParseConfig(flag.NewFlagSet("ddbench", flag.ContinueOnError), args)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Benchmark != BenchLife {
		t.Fatalf("expected benchmark %q, got %q", BenchLife, cfg.Benchmark)
	}
	if cfg.Rows != 4 || cfg.Cols != 4 {
		t.Fatalf("expected a 4x4 grid, got %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.Symmetry != life.None || cfg.Boundary != life.Free {
		t.Fatalf("expected none/free, got %s/%s", cfg.Symmetry, cfg.Boundary)
	}
}

func TestBoundaryUsage(t *testing.T) {
	t.Setenv("DDBENCH_OTEL_ENDPOINT", "")
	fs := flag.NewFlagSet("ddbench", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	f := fs.Lookup("boundary")
	if f == nil {
		t.Fatal("missing -boundary flag")
	}
	if f.DefValue != "free" {
		t.Fatalf("expected default boundary free, got %q", f.DefValue)
	}
	var usage bytes.Buffer
	fs.SetOutput(&usage)
	fs.PrintDefaults()
	if !strings.Contains(usage.String(), `(default "free")`) {
		t.Fatalf("expected the default boundary in usage:\n%s", usage.String())
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("DDBENCH_SYMMETRY", "mirror")
	t.Setenv("DDBENCH_ROWS", "5")
	cfg, err := parse(t, "-cols", "3", "-boundary", "dead", "-bench", "Queens", "-n", "6")
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Symmetry != life.Mirror {
		t.Fatalf("expected mirror from env, got %s", cfg.Symmetry)
	}
	if cfg.Rows != 5 || cfg.Cols != 3 {
		t.Fatalf("expected a 5x3 grid, got %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.Boundary != life.Dead || cfg.Benchmark != BenchQueens || cfg.N != 6 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	var errorTests = []struct {
		args []string
		err  error
	}{
		{[]string{"-symmetry", "rotate"}, life.ErrUnknownSymmetry},
		{[]string{"-boundary", "torus"}, life.ErrUnknownBoundary},
		{[]string{"-bench", "sudoku"}, ErrUnknownBenchmark},
		{[]string{"-check", "minisat"}, cnf.ErrUnknownChecker},
		{[]string{"-rows", "-1"}, nil},
	}
	for _, tt := range errorTests {
		_, err := parse(t, tt.args...)
		if err == nil {
			t.Errorf("%v: expected an error", tt.args)
			continue
		}
		if tt.err != nil && !errors.Is(err, tt.err) {
			t.Errorf("%v: expected %v, got %v", tt.args, tt.err, err)
		}
	}
}

func TestRun(t *testing.T) {
	var runTests = []struct {
		args     []string
		expected string
	}{
		{[]string{"-rows", "2", "-boundary", "dead"}, "garden of eden     : 14"},
		{[]string{"-rows", "3", "-boundary", "dead", "-symmetry", "mirror"}, "garden of eden     : 29"},
		{[]string{"-bench", "queens", "-n", "6", "-check", "gophersat"}, "solutions          : 4"},
		{[]string{"-bench", "queens", "-n", "5", "-check", "gini"}, "gini agrees"},
		{[]string{"-bench", "queens", "-n", "5", "-check", "gophersat"}, "gophersat agrees   : true"},
		{[]string{"-bench", "pigeonhole", "-n", "4", "-check", "gophersat"}, "satisfiable        : false"},
		{[]string{"-bench", "tictactoe", "-n", "10"}, "draws              : 0"},
	}
	for _, tt := range runTests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			cfg, err := parse(t, append(tt.args, "-nodesize", "10000", "-cachesize", "1000")...)
			if err != nil {
				t.Fatalf("parse config: %v", err)
			}
			var out, errOut bytes.Buffer
			if err := Run(context.Background(), cfg, &out, &errOut); err != nil {
				t.Fatalf("run: %v", err)
			}
			if !strings.Contains(out.String(), tt.expected) {
				t.Fatalf("expected %q in report:\n%s", tt.expected, out.String())
			}
		})
	}
}

func TestRunVerbose(t *testing.T) {
	cfg, err := parse(t, "-rows", "2", "-verbose")
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	var out, errOut bytes.Buffer
	if err := Run(context.Background(), cfg, &out, &errOut); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(errOut.String(), "Exi [*]") {
		t.Fatalf("expected intermediate sizes in the log, got:\n%s", errOut.String())
	}
}
