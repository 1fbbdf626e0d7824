// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package build

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dalzilio/ddbench/bdd"
)

// ErrVariable is returned when a builder is given a variable that does not
// exist in the BDD.
var ErrVariable = errors.New("variable out of range")

// Threshold returns a diagram that is true iff exactly k of the variables in
// vars are true. Variables outside vars are don't care and duplicates in vars
// are ignored. The result is False when k is negative or greater than the
// number of variables.
func Threshold(dd *bdd.BDD, vars []int, k int) (bdd.Node, error) {
	if k < 0 {
		return dd.False(), nil
	}
	return Range(dd, vars, k, k)
}

// AtLeast returns a diagram that is true iff at least k of the variables in
// vars are true.
func AtLeast(dd *bdd.BDD, vars []int, k int) (bdd.Node, error) {
	return Range(dd, vars, k, len(vars))
}

// AtMost returns a diagram that is true iff at most k of the variables in vars
// are true.
func AtMost(dd *bdd.BDD, vars []int, k int) (bdd.Node, error) {
	if k < 0 {
		return dd.False(), nil
	}
	return Range(dd, vars, 0, k)
}

// Range returns a diagram that is true iff the number of true variables in
// vars is between lo and hi (both included).
//
// The diagram is built bottom-up with hi+2 slots, where slot i holds the
// function of the variables below the current level when i target variables
// are true above it. The last slot is the constant False, for counts
// exceeding hi. At each level we only rebuild the slots in a window of counts
// that can still be observed from the top and can still reach lo.
func Range(dd *bdd.BDD, vars []int, lo, hi int) (bdd.Node, error) {
	targets, err := sortedVars(dd, vars)
	if err != nil {
		return nil, err
	}
	n := len(targets)
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo > hi {
		return dd.False(), nil
	}
	c := NewChain(dd)
	c.Start(hi + 2)
	for i := lo; i <= hi; i++ {
		c.Set(i, dd.True())
	}
	for j := n - 1; j >= 0; j-- {
		x := targets[j]
		if j < n-1 {
			// don't care levels between two consecutive targets
			from, to := window(lo, hi, n, j+1)
			for level := targets[j+1] - 1; level > x; level-- {
				c.Skip(level, from, to)
			}
		}
		// j targets are above x, and n-j are at x or below
		from, to := window(lo, hi, n, j)
		for i := from; i <= to; i++ {
			c.Branch(x, i, i, i+1)
		}
	}
	return c.Finalize(0)
}

// window returns the slots that need to be rebuilt when processing the target
// of rank j (counting from the top, starting at 0) among n targets.
func window(lo, hi, n, j int) (int, int) {
	from := lo - (n - j)
	if from < 0 {
		from = 0
	}
	to := j
	if to > hi {
		to = hi
	}
	return from, to
}

// sortedVars returns the variables in vars in increasing order, without
// duplicates, or an error if one is not a variable of dd.
func sortedVars(dd *bdd.BDD, vars []int) ([]int, error) {
	res := make([]int, 0, len(vars))
	for _, v := range vars {
		if v < 0 || v >= dd.Varnum() {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrVariable, v, dd.Varnum())
		}
		res = append(res, v)
	}
	sort.Ints(res)
	k := 0
	for i, v := range res {
		if i == 0 || v != res[k-1] {
			res[k] = v
			k++
		}
	}
	return res[:k], nil
}
