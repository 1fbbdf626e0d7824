// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"log"
	"runtime"
)

// gcstat stores status information about garbage collections. We use a stack
// (slice) of objects to record the sequence of GC during a computation.
type gcstat struct {
	setfinalizers    uint64    // Total number of external references to BDD nodes
	calledfinalizers uint64    // Number of external references that were freed
	history          []gcpoint // Snaphot of GC stats at each occurrence
}

type gcpoint struct {
	nodes            int // Total number of allocated nodes in the nodetable
	freenodes        int // Number of free nodes in the nodetable
	setfinalizers    int // Total number of external references to BDD nodes
	calledfinalizers int // Number of external references that were freed
}

// AddRef increases the reference count on node n and returns n so that calls
// can be easily chained together. A call to AddRef can never raise an error,
// even if we access an unused node or a value outside the range of the BDD.
func (b *BDD) AddRef(n Node) Node {
	if n == nil || *n < 2 || *n >= len(b.nodes) {
		return n
	}
	if b.nodes[*n].low == -1 {
		return n
	}
	if b.nodes[*n].refcou < _MAXREFCOUNT {
		b.nodes[*n].refcou++
	}
	return n
}

// DelRef decreases the reference count on a node and returns n so that calls
// can be easily chained together. Like AddRef, it never raises an error.
func (b *BDD) DelRef(n Node) Node {
	if n == nil || *n < 2 {
		return n
	}
	b.release(*n)
	return n
}

func (b *BDD) release(n int) {
	if n >= len(b.nodes) || b.nodes[n].low == -1 {
		return
	}
	if b.nodes[n].refcou > 0 && b.nodes[n].refcou < _MAXREFCOUNT {
		b.nodes[n].refcou--
	}
}

// gbc is the garbage collector called for reclaiming memory, inside a call to
// makenode, when there are no free positions available. Allocated nodes that
// are not reclaimed do not move.
func (b *BDD) gbc() {
	if _LOGLEVEL > 0 {
		log.Println("starting GC")
	}
	// external references dropped since the last collection
	released := b.released.drain()
	for _, n := range released {
		b.release(n)
	}
	b.gcstat.history = append(b.gcstat.history, gcpoint{
		nodes:            len(b.nodes),
		freenodes:        b.freenum,
		setfinalizers:    int(b.gcstat.setfinalizers),
		calledfinalizers: len(released),
	})
	b.gcstat.setfinalizers = 0
	b.gcstat.calledfinalizers = 0
	// we mark the nodes in the refstack to avoid collecting them
	for _, r := range b.refstack {
		b.markrec(r)
	}
	// we also protect nodes with a positive refcount (and therefore also the
	// ones with a MAXREFCOUNT, such has variables)
	for k := range b.nodes {
		if b.nodes[k].refcou&^_MARK > 0 {
			b.markrec(k)
		}
	}
	b.freepos = 0
	b.freenum = 0
	// we do a pass through the nodes list to void the unmarked nodes. After
	// finishing this pass, b.freepos points to the first free position in
	// b.nodes, or it is 0 if we found none.
	for n := len(b.nodes) - 1; n > 1; n-- {
		if b.ismarked(n) && (b.nodes[n].low != -1) {
			b.unmarknode(n)
			continue
		}
		if b.nodes[n].low != -1 {
			delete(b.unique, nodekey{b.nodes[n].level, b.nodes[n].low, b.nodes[n].high})
		}
		b.nodes[n] = vertex{low: -1, high: b.freepos}
		b.freepos = n
		b.freenum++
	}
	// we also invalidate the caches
	b.cachereset()
	if _LOGLEVEL > 0 {
		log.Printf("end GC; freenum: %d\n", b.freenum)
	}
}

// GC runs a garbage collection on the node table, after asking the Go runtime
// to collect the Node values that are no longer referenced.
func (b *BDD) GC() {
	b.initref()
	runtime.GC()
	b.gbc()
}

// *************************************************************************
// RECURSIVE MARK / UNMARK

func (b *BDD) markrec(n int) {
	if n < 2 || b.ismarked(n) || (b.nodes[n].low == -1) {
		return
	}
	b.marknode(n)
	b.markrec(b.nodes[n].low)
	b.markrec(b.nodes[n].high)
}

// markcount returns the number of successors of the node n and mark them.
func (b *BDD) markcount(n int) int {
	if n < 2 || b.ismarked(n) || (b.nodes[n].low == -1) {
		return 0
	}
	b.marknode(n)
	return 1 + b.markcount(b.nodes[n].low) + b.markcount(b.nodes[n].high)
}

func (b *BDD) unmarkall() {
	for k, v := range b.nodes {
		if k < 2 || !b.ismarked(k) || (v.low == -1) {
			continue
		}
		b.unmarknode(k)
	}
}

// *************************************************************************
// private functions to manipulate the refstack; used to prevent nodes that are
// currently being built (e.g. transient nodes built during an apply) to be
// reclaimed during GC.

func (b *BDD) initref() {
	b.refstack = b.refstack[:0]
}

func (b *BDD) pushref(n int) int {
	b.refstack = append(b.refstack, n)
	return n
}

func (b *BDD) popref(a int) {
	b.refstack = b.refstack[:len(b.refstack)-a]
}
