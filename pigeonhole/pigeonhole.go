// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package pigeonhole encodes the pigeonhole principle: n+1 pigeons cannot
// sit in n holes without two of them sharing a hole. The resulting formulas
// are unsatisfiable and hard for resolution-based solvers.
package pigeonhole

import (
	"github.com/dalzilio/ddbench/internal/cnf"
)

// DefaultHoles is the usual number of holes for this benchmark.
const DefaultHoles = 8

// Var returns the DIMACS variable stating that pigeon p sits in hole h, with
// n holes. Pigeons are numbered from 0 to n and holes from 0 to n-1.
func Var(n, p, h int) int {
	return p*n + h + 1
}

// CNF returns the formula stating that n+1 pigeons sit in n holes, one
// pigeon per hole at most.
func CNF(n int) *cnf.Formula {
	f := cnf.New((n + 1) * n)
	for p := 0; p <= n; p++ {
		clause := make([]int, n)
		for h := 0; h < n; h++ {
			clause[h] = Var(n, p, h)
		}
		f.MustAdd(clause...)
	}
	for h := 0; h < n; h++ {
		for p := 0; p <= n; p++ {
			for q := p + 1; q <= n; q++ {
				f.MustAdd(-Var(n, p, h), -Var(n, q, h))
			}
		}
	}
	return f
}
