// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddbench

import (
	"bufio"
	"io"
	"math/big"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dalzilio/ddbench/bdd"
	"github.com/dalzilio/ddbench/internal/diag"
)

type variables struct {
	name  string
	count int
}

// report is the outcome of one benchmark run.
type report struct {
	title     string
	variables []variables
	label     string
	count     *big.Int // nil for satisfiability benchmarks
	sat       *bool
	dd        *bdd.BDD
	diag      *diag.Diagnostics
	elapsed   time.Duration
	checker   string
	agrees    bool
	checkTime time.Duration
}

func printer(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

func ms(d time.Duration) int64 {
	return d.Milliseconds()
}

// write prints r to w, with numbers formatted for language lang.
func (r *report) write(w io.Writer, lang string) error {
	p := printer(lang)
	bw := bufio.NewWriter(w)
	total := 0
	for _, v := range r.variables {
		total += v.count
	}
	p.Fprintf(bw, "%s\n", r.title)
	p.Fprintf(bw, "   | variables          : %d\n", total)
	if len(r.variables) > 1 {
		for _, v := range r.variables {
			p.Fprintf(bw, "   | | %-16s : %d\n", v.name, v.count)
		}
	}
	p.Fprintf(bw, "   | apply time (ms)    : %d\n", ms(r.diag.ApplyTime))
	p.Fprintf(bw, "   | exists time (ms)   : %d\n", ms(r.diag.ExistsTime))
	p.Fprintf(bw, "   | counting time (ms) : %d\n", ms(r.diag.CountTime))
	p.Fprintf(bw, "   | total time (ms)    : %d\n", ms(r.elapsed))
	p.Fprintf(bw, "   | largest size       : %d nodes\n", r.diag.LargestNodecount)
	p.Fprintf(bw, "   | produced           : %d nodes\n", r.dd.Produced())
	if r.count != nil {
		p.Fprintf(bw, "   | %-18s : %s\n", r.label, r.count.String())
	}
	if r.sat != nil {
		p.Fprintf(bw, "   | %-18s : %t\n", r.label, *r.sat)
	}
	if r.checker != "" {
		p.Fprintf(bw, "   | %-18s : %t (%d ms)\n", r.checker+" agrees", r.agrees, ms(r.checkTime))
	}
	return bw.Flush()
}
