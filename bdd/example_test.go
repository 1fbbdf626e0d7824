// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd_test

import (
	"fmt"
	"log"

	"github.com/dalzilio/ddbench/bdd"
)

// This example shows the basic usage of the package: create a BDD, compute some
// expressions and output the result.
func Example_basic() {
	// Create a new BDD with 6 variables, 10 000 nodes and a cache size of 3 000
	// (initially).
	dd, _ := bdd.New(6, bdd.Nodesize(10000), bdd.Cachesize(3000))
	// n1 is a set comprising the three variables {x2, x3, x5}. It can also be
	// interpreted as the Boolean expression: x2 & x3 & x5
	n1 := dd.Makeset([]int{2, 3, 5})
	// n2 == x1 | !x3 | x4
	n2 := dd.Or(dd.Ithvar(1), dd.NIthvar(3), dd.Ithvar(4))
	// n3 == ∃ x2,x3,x5 . (n2 & x3)
	n3 := dd.AndExist(n1, n2, dd.Ithvar(3))
	log.Print(dd.Stats())
	fmt.Printf("Number of sat. assignments: %s\n", dd.Satcount(n3))
	// Output:
	// Number of sat. assignments: 48
}

// This example builds the function x0 <=> x2 directly, node by node, starting
// from the bottom of the diagram.
func Example_makeNode() {
	dd, _ := bdd.New(3)
	// two branches for x2, below the split on x0
	low := dd.MakeNode(2, dd.True(), dd.False())
	high := dd.MakeNode(2, dd.False(), dd.True())
	// x1 is a don't care, so MakeNode(1, low, low) is simply low
	eq := dd.MakeNode(0, dd.MakeNode(1, low, low), dd.MakeNode(1, high, high))
	fmt.Println(dd.Equal(eq, dd.Equiv(dd.Ithvar(0), dd.Ithvar(2))))
	fmt.Println(dd.Nodecount(eq), dd.SatcountVars(eq, 3))
	// Output:
	// true
	// 3 4
}
