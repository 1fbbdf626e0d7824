// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command ddbench runs decision diagram benchmarks: Garden-of-Eden states of
// the Game of Life, 4x4x4 tic-tac-toe draws, N-queens and the pigeonhole
// principle.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	benchcmd "github.com/dalzilio/ddbench/internal/cmd/ddbench"
	"github.com/dalzilio/ddbench/internal/platform/config"
)

func main() {
	cfg, err := benchcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("ddbench: %v", err)
	}
	log.SetFlags(0)
	log.SetPrefix("[DDBENCH] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := benchcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("run: %v", err)
	}
}
