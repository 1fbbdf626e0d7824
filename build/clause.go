// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package build

import (
	"fmt"
	"sort"

	"github.com/dalzilio/ddbench/bdd"
)

// Clause returns the disjunction of the literals in lits, using the DIMACS
// convention: a positive value v stands for variable v-1, and a negative value
// -v for its negation. The empty clause is False, and a clause with two
// complementary literals is True.
func Clause(dd *bdd.BDD, lits []int) (bdd.Node, error) {
	sign := make(map[int]bool, len(lits))
	for _, l := range lits {
		v, pos := l-1, true
		if l < 0 {
			v, pos = -l-1, false
		}
		if l == 0 || v >= dd.Varnum() {
			return nil, fmt.Errorf("%w: literal %d with %d variables", ErrVariable, l, dd.Varnum())
		}
		if s, ok := sign[v]; ok && s != pos {
			return dd.True(), nil
		}
		sign[v] = pos
	}
	vars := make([]int, 0, len(sign))
	for v := range sign {
		vars = append(vars, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(vars)))

	// slot 0 accumulates the clause, slot 1 is the constant True
	c := NewChain(dd)
	c.Start(2)
	c.Set(1, dd.True())
	for _, v := range vars {
		if sign[v] {
			c.Branch(v, 0, 0, 1)
		} else {
			c.Branch(v, 0, 1, 0)
		}
	}
	return c.Finalize(0)
}
