// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package build

import (
	"errors"
	"fmt"

	"github.com/dalzilio/ddbench/bdd"
)

// ErrConsumed is returned by Finalize when the chain has already been
// finalized and not restarted since.
var ErrConsumed = errors.New("chain already finalized")

// Chain is an array of partial diagrams, called slots, that are updated in
// place while a diagram is assembled bottom-up. Levels passed to Branch and
// Skip must never increase between two calls. A Chain is not safe for
// concurrent use, and its slots must not be used after Finalize.
type Chain struct {
	dd     *bdd.BDD
	slots  []bdd.Node
	level  int
	active bool
}

// NewChain returns an empty chain for the BDD dd. The chain must be started
// before use.
func NewChain(dd *bdd.BDD) *Chain {
	return &Chain{dd: dd}
}

// Start resets the chain with size slots, all set to False.
func (c *Chain) Start(size int) {
	if size < 1 {
		panic(fmt.Sprintf("build: chain started with %d slots", size))
	}
	if cap(c.slots) >= size {
		c.slots = c.slots[:size]
	} else {
		c.slots = make([]bdd.Node, size)
	}
	for i := range c.slots {
		c.slots[i] = c.dd.False()
	}
	c.level = c.dd.Varnum()
	c.active = true
}

// Len returns the number of slots of a started chain.
func (c *Chain) Len() int {
	c.mustBeActive("Len")
	return len(c.slots)
}

// Set stores n in slot i.
func (c *Chain) Set(i int, n bdd.Node) {
	c.mustBeActive("Set")
	c.slots[c.index(i)] = n
}

// Branch replaces slot dst with the node testing variable level, with the
// current content of slots low and high as false and true successors.
// Updating slots in increasing order of dst, with high == dst+1, gives the
// usual counting chain since slot dst+1 still holds its previous value.
func (c *Chain) Branch(level, dst, low, high int) {
	c.mustBeActive("Branch")
	c.descend(level)
	c.slots[c.index(dst)] = c.dd.MakeNode(level, c.slots[c.index(low)], c.slots[c.index(high)])
}

// Skip crosses variable level for the slots in [from, to]: each slot becomes
// a don't care node on level, which the engine reduces to the slot itself.
func (c *Chain) Skip(level, from, to int) {
	c.mustBeActive("Skip")
	c.descend(level)
	c.index(to)
	for i := c.index(from); i <= to; i++ {
		c.slots[i] = c.dd.MakeNode(level, c.slots[i], c.slots[i])
	}
}

// Finalize returns the content of slot i and consumes the chain. It returns
// ErrConsumed when called twice without an intervening Start, and the engine
// error if one occurred during construction.
func (c *Chain) Finalize(i int) (bdd.Node, error) {
	if !c.active {
		return nil, ErrConsumed
	}
	res := c.slots[c.index(i)]
	c.active = false
	for k := range c.slots {
		c.slots[k] = nil
	}
	if c.dd.Errored() {
		return nil, fmt.Errorf("build: %s", c.dd.Error())
	}
	if res == nil {
		return nil, errors.New("build: finalized an empty slot")
	}
	return res, nil
}

func (c *Chain) mustBeActive(op string) {
	if !c.active {
		panic("build: " + op + " on a chain that is not started")
	}
}

func (c *Chain) index(i int) int {
	if i < 0 || i >= len(c.slots) {
		panic(fmt.Sprintf("build: slot %d out of range [0, %d)", i, len(c.slots)))
	}
	return i
}

// descend records that the chain is now working on variable level.
func (c *Chain) descend(level int) {
	if level > c.level {
		panic(fmt.Sprintf("build: level %d is below the current level %d", level, c.level))
	}
	c.level = level
}
