// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package diag records the timings and sizes observed while building and
// counting decision diagrams.
package diag

import (
	"log"
	"time"
)

// Diagnostics collects timings and sizes during the construction of a
// diagram. A nil *Diagnostics is valid and records nothing. When Logger is
// set, the size of the relation is logged after every step.
type Diagnostics struct {
	ApplyTime        time.Duration // time spent building and conjoining relations
	ExistsTime       time.Duration // time spent in quantifications
	CountTime        time.Duration // time spent counting solutions
	LargestNodecount int           // largest intermediate relation, in nodes
	Steps            int           // number of recorded steps
	Logger           *log.Logger
}

// Enabled tells if sizes need to be computed.
func (d *Diagnostics) Enabled() bool {
	return d != nil
}

// Apply adds the time elapsed since since to ApplyTime.
func (d *Diagnostics) Apply(since time.Time) {
	if d != nil {
		d.ApplyTime += time.Since(since)
	}
}

// Exists adds the time elapsed since since to ExistsTime.
func (d *Diagnostics) Exists(since time.Time) {
	if d != nil {
		d.ExistsTime += time.Since(since)
	}
}

// Count adds the time elapsed since since to CountTime.
func (d *Diagnostics) Count(since time.Time) {
	if d != nil {
		d.CountTime += time.Since(since)
	}
}

// Observe records the size of an intermediate relation.
func (d *Diagnostics) Observe(step string, nodes int) {
	if d == nil {
		return
	}
	d.Steps++
	if nodes > d.LargestNodecount {
		d.LargestNodecount = nodes
	}
	if d.Logger != nil {
		d.Logger.Printf("%-16s: %d", step, nodes)
	}
}

// Total returns the sum of the recorded times.
func (d *Diagnostics) Total() time.Duration {
	if d == nil {
		return 0
	}
	return d.ApplyTime + d.ExistsTime + d.CountTime
}
