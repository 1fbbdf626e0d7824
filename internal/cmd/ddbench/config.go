// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package ddbench parses the benchmark command configuration and runs the
// selected benchmark.
package ddbench

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/dalzilio/ddbench/internal/cnf"
	entrypoint "github.com/dalzilio/ddbench/internal/platform/cmd"
	"github.com/dalzilio/ddbench/life"
)

// Benchmark names.
const (
	BenchLife       = "life"
	BenchTicTacToe  = "tictactoe"
	BenchQueens     = "queens"
	BenchPigeonhole = "pigeonhole"
)

// ErrUnknownBenchmark is returned for an unknown benchmark name.
var ErrUnknownBenchmark = errors.New("unknown benchmark")

// Config holds the benchmark command configuration.
type Config struct {
	Benchmark string        `env:"DDBENCH_BENCHMARK" envDefault:"life"`
	Rows      int           `env:"DDBENCH_ROWS" envDefault:"4"`
	Cols      int           `env:"DDBENCH_COLS" envDefault:"0"`
	Symmetry  life.Symmetry `env:"DDBENCH_SYMMETRY" envDefault:"none"`
	Boundary  life.Boundary `env:"DDBENCH_BOUNDARY" envDefault:"free"`
	N         int           `env:"DDBENCH_N" envDefault:"0"`
	Nodesize  int           `env:"DDBENCH_NODESIZE" envDefault:"100000"`
	Cachesize int           `env:"DDBENCH_CACHESIZE" envDefault:"10000"`
	Check     string        `env:"DDBENCH_CHECK" envDefault:"none"`
	Verbose   bool          `env:"DDBENCH_VERBOSE" envDefault:"false"`
	Lang      string        `env:"DDBENCH_LANG" envDefault:"en"`
}

// ParseConfig parses environment and flags into a Config, and validates it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Benchmark, "bench", cfg.Benchmark, "benchmark to run: life, tictactoe, queens or pigeonhole")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "number of rows of the Game of Life grid")
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "number of columns of the Game of Life grid (0 = rows)")
	symmetry := cfg.Symmetry.String()
	boundary := cfg.Boundary.String()
	fs.StringVar(&symmetry, "symmetry", symmetry, "symmetry of the Game of Life states: none or mirror")
	fs.StringVar(&boundary, "boundary", boundary, "border of the Game of Life grid: free (border cells unconstrained) or dead (border cells always dead)")
	fs.IntVar(&cfg.N, "n", cfg.N, "size of the counting benchmarks (0 = benchmark default)")
	fs.IntVar(&cfg.Nodesize, "nodesize", cfg.Nodesize, "initial size of the node table")
	fs.IntVar(&cfg.Cachesize, "cachesize", cfg.Cachesize, "initial size of the operation caches")
	fs.StringVar(&cfg.Check, "check", cfg.Check, "SAT cross-check for queens and pigeonhole: none, gophersat or gini")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log the size of intermediate diagrams")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "language of the report")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	var err error
	if cfg.Symmetry, err = life.ParseSymmetry(symmetry); err != nil {
		return Config{}, fmt.Errorf("flag -symmetry: %w", err)
	}
	if cfg.Boundary, err = life.ParseBoundary(boundary); err != nil {
		return Config{}, fmt.Errorf("flag -boundary: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	cfg.Benchmark = strings.ToLower(strings.TrimSpace(cfg.Benchmark))
	switch cfg.Benchmark {
	case BenchLife, BenchTicTacToe, BenchQueens, BenchPigeonhole:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBenchmark, cfg.Benchmark)
	}
	if cfg.Cols == 0 {
		cfg.Cols = cfg.Rows
	}
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return fmt.Errorf("invalid grid %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.N < 0 {
		return fmt.Errorf("invalid size %d", cfg.N)
	}
	if _, err := cnf.NewChecker(cfg.Check); err != nil {
		return err
	}
	return nil
}
