// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
)

// Node is a reference to an element of a BDD. It represents the atomic unit of
// interactions and computations within a BDD.
type Node *int

// BDD is a table of shared, reduced and ordered decision diagram nodes over a
// fixed set of variables. A BDD is not safe for concurrent use.
type BDD struct {
	varnum        int32           // number of BDD variables
	varset        [][2]int        // positive and negative literal for each variable
	refstack      []int           // internal node reference stack
	error                         // error status to help chain operations
	nodes         []vertex        // constants are always kept at index 0 and 1
	unique        map[nodekey]int // unicity table, associates each triplet to a single node
	freenum       int             // number of free nodes
	freepos       int             // first free node, 0 if none
	produced      int             // total number of new nodes ever produced
	nodefinalizer func(*int)      // finalizer used to release external references
	released      releaseQueue    // node ids whose external reference was finalized
	quantset      []int32         // current variable set for quantification
	quantsetID    int32           // current id used in quantset
	quantlast     int32           // last variable to be quantified
	configs                       // configurable parameters
	gcstat                        // information about garbage collections
	cacheStat                     // information about the caches
	applycache                    // cache for apply (and not) results
	itecache                      // cache for ITE results
	quantcache                    // cache for exist results
	appexcache                    // cache for AppEx results
}

// vertex is an entry in the node table. A free slot has low set to -1 and high
// set to the next free position.
type vertex struct {
	level  int32 // order of the variable in the BDD
	refcou int32 // number of external references, plus the mark bit
	low    int   // reference to the false branch
	high   int   // reference to the true branch
}

// nodekey is the triplet used to index the unicity table.
type nodekey struct {
	level int32
	low   int
	high  int
}

// releaseQueue collects the ids of nodes whose external reference has been
// finalized. Finalizers run on their own goroutine, so the queue is the only
// part of a BDD touched concurrently.
type releaseQueue struct {
	sync.Mutex
	ids []int
}

func (q *releaseQueue) push(n int) {
	q.Lock()
	q.ids = append(q.ids, n)
	q.Unlock()
}

func (q *releaseQueue) drain() []int {
	q.Lock()
	ids := q.ids
	q.ids = nil
	q.Unlock()
	return ids
}

// inode returns a Node for known nodes, such as variables, that do not need to
// increase their reference count.
func inode(n int) Node {
	x := n
	return &x
}

var bddone Node = inode(1)

var bddzero Node = inode(0)

// New returns a new BDD with varnum variables. Options can be used to tune the
// size of the node table and of the caches, see Nodesize, Cachesize, etc.
//
// The initial number of nodes is not critical since the table will be resized
// whenever there are too few nodes left after a garbage collection. But it does
// have some impact on the efficiency of the operations.
func New(varnum int, options ...func(*configs)) (*BDD, error) {
	if (varnum < 1) || (varnum > int(_MAXVAR)) {
		return nil, fmt.Errorf("bad number of variable (%d)", varnum)
	}
	config := makeconfigs(varnum)
	for _, f := range options {
		f(config)
	}
	b := &BDD{configs: *config}
	b.varnum = int32(varnum)
	if _LOGLEVEL > 0 {
		log.Printf("set varnum to %d\n", b.varnum)
	}
	nodesize := b.nodesize
	b.nodes = make([]vertex, nodesize)
	for k := range b.nodes {
		b.nodes[k] = vertex{
			level:  0,
			low:    -1,
			high:   k + 1,
			refcou: 0,
		}
	}
	b.nodes[nodesize-1].high = 0
	b.unique = make(map[nodekey]int, nodesize)
	b.nodes[0] = vertex{level: b.varnum, low: 0, high: 0, refcou: _MAXREFCOUNT}
	b.nodes[1] = vertex{level: b.varnum, low: 1, high: 1, refcou: _MAXREFCOUNT}
	b.freepos = 2
	b.freenum = nodesize - 2
	b.cacheinit()
	b.varset = make([][2]int, varnum)
	b.refstack = make([]int, 0, 2*varnum+4)
	b.quantset = make([]int32, varnum)
	b.initref()
	for k := int32(0); k < b.varnum; k++ {
		v0 := b.makenode(k, 0, 1)
		if v0 < 0 {
			return nil, fmt.Errorf("cannot allocate new variable %d; %s", k, b.Error())
		}
		b.nodes[v0].refcou = _MAXREFCOUNT
		b.pushref(v0)
		v1 := b.makenode(k, 1, 0)
		if v1 < 0 {
			return nil, fmt.Errorf("cannot allocate new variable %d; %s", k, b.Error())
		}
		b.nodes[v1].refcou = _MAXREFCOUNT
		b.popref(1)
		b.varset[k] = [2]int{v0, v1}
	}
	b.nodefinalizer = func(n *int) {
		if _DEBUG {
			atomic.AddUint64(&(b.gcstat.calledfinalizers), 1)
			if _LOGLEVEL > 2 {
				log.Printf("dec refcou %d\n", *n)
			}
		}
		b.released.push(*n)
	}
	return b, nil
}

// Varnum returns the number of defined variables.
func (b *BDD) Varnum() int {
	return int(b.varnum)
}

// True returns the constant true BDD.
func (b *BDD) True() Node {
	return bddone
}

// False returns the constant false BDD.
func (b *BDD) False() Node {
	return bddzero
}

// From returns a (constant) Node from a boolean value.
func (b *BDD) From(v bool) Node {
	if v {
		return bddone
	}
	return bddzero
}

// Ithvar returns a BDD representing the i'th variable on success, otherwise we
// set the error status in the BDD and returns nil. The requested variable must
// be in the range [0..Varnum).
func (b *BDD) Ithvar(i int) Node {
	if (i < 0) || (int32(i) >= b.varnum) {
		return b.seterror("unknown variable used (%d) in call to ithvar", i)
	}
	// we do not need to reference count variables
	return inode(b.varset[i][0])
}

// NIthvar returns a bdd representing the negation of the i'th variable on
// success. See Ithvar for further info.
func (b *BDD) NIthvar(i int) Node {
	if (i < 0) || (int32(i) >= b.varnum) {
		return b.seterror("unknown variable used (%d) in call to nithvar", i)
	}
	return inode(b.varset[i][1])
}

// Label returns the variable (level) tested by node n. We set the BDD to its
// error state and return -1 if n is a constant or not a valid node.
func (b *BDD) Label(n Node) int {
	if err := b.checkptr(n); err != nil {
		b.seterror("illegal access in call to Label; %s", err)
		return -1
	}
	if *n < 2 {
		b.seterror("try to access label of constant node")
		return -1
	}
	return int(b.nodes[*n].level)
}

// Low returns the false branch of a BDD. We return nil if there is an error
// and set the error flag in the BDD.
func (b *BDD) Low(n Node) Node {
	if err := b.checkptr(n); err != nil {
		return b.seterror("illegal access in call to Low; %s", err)
	}
	return b.retnode(b.nodes[*n].low)
}

// High returns the true branch of a BDD. We return nil if there is an error
// and set the error flag in the BDD.
func (b *BDD) High(n Node) Node {
	if err := b.checkptr(n); err != nil {
		return b.seterror("illegal access in call to High; %s", err)
	}
	return b.retnode(b.nodes[*n].high)
}

// Equal tests equivalence between nodes. Since diagrams are canonical, two
// nodes are equivalent iff they have the same address.
func (b *BDD) Equal(n1, n2 Node) bool {
	if n1 == n2 {
		return true
	}
	if n1 == nil || n2 == nil {
		return false
	}
	return *n1 == *n2
}

// checkptr returns an error if n is not a valid reference for b.
func (b *BDD) checkptr(n Node) error {
	switch {
	case n == nil:
		return errNilNode
	case (*n < 0) || (*n >= len(b.nodes)):
		return fmt.Errorf("node %d is not a valid index", *n)
	case *n >= 2 && b.nodes[*n].low == -1:
		return fmt.Errorf("node %d is not in use", *n)
	}
	return nil
}

func (b *BDD) level(n int) int32 {
	return b.nodes[n].level
}

func (b *BDD) low(n int) int {
	return b.nodes[n].low
}

func (b *BDD) high(n int) int {
	return b.nodes[n].high
}
