// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"errors"
	"log"
	"math"
	"runtime"
	"sync/atomic"
)

// _MINFREENODES is the minimal number of nodes (%) that has to be left after a
// garbage collect unless a resize should be done.
const _MINFREENODES int = 20

// _MAXVAR is the maximal number of levels in the BDD. We use only the first 21
// bits for encoding levels (so also the max number of variables). Hence we make
// sure to always use int32 to avoid problem when we change architecture.
const _MAXVAR int32 = 0x1FFFFF

// _MAXREFCOUNT is the maximal value of the reference counter (refcou), also
// used to stick nodes (like constants and variables) in the node list. It is
// egal to 1023 (10 bits).
const _MAXREFCOUNT int32 = 0x3FF

// _MARK is the bit of refcou used when marking nodes during a traversal.
const _MARK int32 = 0x200000

// _DEFAULTMAXNODEINC is the default value for the maximal increase in the
// number of nodes during a resize. It is approx. one million nodes (1 048 576).
const _DEFAULTMAXNODEINC int = 1 << 20

var errMemory = errors.New("unable to free memory or resize BDD")

var errNilNode = errors.New("nil node")

// retnode creates a Node for external use and sets a finalizer on it so that we
// can reclaim the ressource during GC.
func (b *BDD) retnode(n int) Node {
	if n < 0 || n >= len(b.nodes) {
		if _DEBUG {
			log.Panicf("b.retnode(%d) not valid\n", n)
		}
		return nil
	}
	if n == 0 {
		return bddzero
	}
	if n == 1 {
		return bddone
	}
	x := n
	if b.nodes[n].refcou < _MAXREFCOUNT {
		b.nodes[n].refcou++
		runtime.SetFinalizer(&x, b.nodefinalizer)
		if _DEBUG {
			atomic.AddUint64(&(b.gcstat.setfinalizers), 1)
			if _LOGLEVEL > 2 {
				log.Printf("inc refcou %d\n", n)
			}
		}
	}
	return &x
}

// makenode returns the index of the node (level, low, high), creating it if
// needed. We return -1 and set the error status of b when the table is full
// and cannot be resized.
func (b *BDD) makenode(level int32, low int, high int) int {
	if low < 0 || high < 0 {
		return -1
	}
	if _DEBUG {
		b.uniqueAccess++
	}
	// check whether children are equal, in which case we can skip the node
	if low == high {
		return low
	}
	key := nodekey{level, low, high}
	if res, ok := b.unique[key]; ok {
		if _DEBUG {
			b.uniqueHit++
		}
		return res
	}
	if _DEBUG {
		b.uniqueMiss++
	}
	// If no existing node, we build one. If there is no available spot
	// (b.freepos == 0), we try garbage collection and, as a last resort,
	// resizing the BDD list.
	if b.freepos == 0 {
		// low and high may be fresh nodes only reachable from the caller
		b.pushref(low)
		b.pushref(high)
		b.gbc()
		b.popref(2)
		if (b.freenum*100)/len(b.nodes) <= b.minfreenodes {
			if err := b.noderesize(); err != nil && b.freepos == 0 {
				b.seterror("cannot allocate node at level %d; %s", level, err)
				return -1
			}
			b.cacheresize()
		}
		if b.freepos == 0 {
			b.seterror("cannot allocate node at level %d; %s", level, errMemory)
			return -1
		}
	}
	// We can now build the new node in the first available spot
	b.produced++
	b.freenum--
	res := b.freepos
	b.freepos = b.nodes[res].high
	b.nodes[res] = vertex{level: level, low: low, high: high}
	b.unique[key] = res
	return res
}

// noderesize grows the node table. The free list is extended with the new
// slots.
func (b *BDD) noderesize() error {
	if _LOGLEVEL > 0 {
		log.Printf("start resize: %d\n", len(b.nodes))
	}
	oldsize := len(b.nodes)
	nodesize := len(b.nodes)
	if (oldsize >= b.maxnodesize) && (b.maxnodesize > 0) {
		return errMemory
	}
	if oldsize > (math.MaxInt32 >> 1) {
		nodesize = math.MaxInt32 - 1
	} else {
		nodesize = nodesize << 1
	}
	if b.maxnodeincrease > 0 && nodesize > (oldsize+b.maxnodeincrease) {
		nodesize = oldsize + b.maxnodeincrease
	}
	if (nodesize > b.maxnodesize) && (b.maxnodesize > 0) {
		nodesize = b.maxnodesize
	}
	if nodesize <= oldsize {
		return errMemory
	}

	tmp := b.nodes
	b.nodes = make([]vertex, nodesize)
	copy(b.nodes, tmp)

	for n := oldsize; n < nodesize; n++ {
		b.nodes[n] = vertex{low: -1, high: n + 1}
	}
	b.nodes[nodesize-1].high = b.freepos
	b.freepos = oldsize
	b.freenum += (nodesize - oldsize)

	if _LOGLEVEL > 0 {
		log.Printf("end resize: %d\n", len(b.nodes))
	}
	return nil
}

func (b *BDD) ismarked(n int) bool {
	return (b.nodes[n].refcou & _MARK) != 0
}

func (b *BDD) marknode(n int) {
	b.nodes[n].refcou |= _MARK
}

func (b *BDD) unmarknode(n int) {
	b.nodes[n].refcou &^= _MARK
}
