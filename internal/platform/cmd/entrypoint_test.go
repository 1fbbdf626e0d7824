package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

func TestParseConfigNil(t *testing.T) {
	var cfg *struct{}
	if err := ParseConfig(cfg); err == nil {
		t.Fatal("expected error for nil target")
	}
}

func TestParseArgs(t *testing.T) {
	if err := ParseArgs(nil, nil); err == nil {
		t.Fatal("expected error for nil flag set")
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	n := fs.Int("n", 1, "")
	if err := ParseArgs(fs, nil); err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if err := ParseArgs(fs, []string{"-n", "3"}); err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if *n != 3 {
		t.Fatalf("expected 3, got %d", *n)
	}
}

func TestRunWithTelemetry(t *testing.T) {
	t.Setenv("DDBENCH_OTEL_ENDPOINT", "")
	if err := RunWithTelemetry(context.Background(), " ", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected error for empty service name")
	}
	if err := RunWithTelemetry(context.Background(), ServiceBench, nil); err == nil {
		t.Fatal("expected error for nil run function")
	}
	boom := errors.New("boom")
	err := RunWithTelemetry(context.Background(), ServiceBench, func(context.Context) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected run error, got %v", err)
	}
}
