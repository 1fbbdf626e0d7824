// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package build

import (
	"fmt"

	"github.com/dalzilio/ddbench/bdd"
)

// Equal returns a diagram that is true iff variables x and y have the same
// value, whatever the value of the other variables.
//
// We split on the lower variable of the two into two branches, one for each
// of its values, carry both branches through the levels in between, and merge
// them on the upper variable. The result has at most two nodes per level
// between x and y, and none elsewhere.
func Equal(dd *bdd.BDD, x, y int) (bdd.Node, error) {
	for _, v := range []int{x, y} {
		if v < 0 || v >= dd.Varnum() {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrVariable, v, dd.Varnum())
		}
	}
	if x == y {
		return dd.True(), nil
	}
	top, bottom := x, y
	if top > bottom {
		top, bottom = bottom, top
	}
	const (
		zero     = 0 // constant False
		one      = 1 // constant True
		observed = 2 // bottom observed false, then the merged result
		other    = 3 // bottom observed true
	)
	c := NewChain(dd)
	c.Start(4)
	c.Set(one, dd.True())
	c.Branch(bottom, observed, one, zero)
	c.Branch(bottom, other, zero, one)
	for level := bottom - 1; level > top; level-- {
		c.Skip(level, observed, other)
	}
	c.Branch(top, observed, observed, other)
	return c.Finalize(observed)
}
