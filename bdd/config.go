// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// configs holds the sizing parameters of a BDD, set with the options below.
type configs struct {
	varnum          int // number of variables
	nodesize        int // initial size of the node table
	cachesize       int // initial number of entries in each operation cache
	cacheratio      int // cache entries per 100 nodes after a resize, 0 for a fixed size
	maxnodesize     int // bound on the node table, 0 if none
	maxnodeincrease int // bound on the growth at each resize, 0 if none
	minfreenodes    int // free nodes (%) below which a collection triggers a resize
}

func makeconfigs(varnum int) *configs {
	return &configs{
		varnum:          varnum,
		nodesize:        2*varnum + 2,
		minfreenodes:    _MINFREENODES,
		maxnodeincrease: _DEFAULTMAXNODEINC,
	}
}

// Nodesize sets the initial size of the node table. Values too small to hold
// the constants and the two literals of every variable are ignored.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}

// Maxnodesize bounds the number of nodes. Once the table is full and cannot
// grow, operations set the error status of the BDD and return nil. The default
// (0) is unbounded.
func Maxnodesize(size int) func(*configs) {
	return func(c *configs) {
		c.maxnodesize = size
	}
}

// Maxnodeincrease bounds the number of nodes added at each resize; below it
// the table doubles. The default is about one million; 0 removes the bound.
func Maxnodeincrease(size int) func(*configs) {
	return func(c *configs) {
		c.maxnodeincrease = size
	}
}

// Minfreenodes sets the ratio (%) of free nodes that a garbage collection must
// leave, otherwise the table is resized. The default is 20.
func Minfreenodes(ratio int) func(*configs) {
	return func(c *configs) {
		c.minfreenodes = ratio
	}
}

// Cachesize sets the initial number of entries of each operation cache. The
// default (0) gives one entry for every five slots of the initial node table.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		c.cachesize = size
	}
}

// Cacheratio lets the caches grow with the node table: after a resize each
// cache holds ratio entries for every 100 nodes. The default (0) keeps the
// initial size.
func Cacheratio(ratio int) func(*configs) {
	return func(c *configs) {
		c.cacheratio = ratio
	}
}
