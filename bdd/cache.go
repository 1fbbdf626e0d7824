// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"math"
)

// cache is used for caching apply/exist etc. results
type cache struct {
	ratio int // value used to resize the caches as a factor of the number of nodes
	table []cacheData
}

// cacheStat stores status information about cache usage
type cacheStat struct {
	uniqueAccess int // accesses to the unique node table
	uniqueHit    int // entries actually found in the the unique node table
	uniqueMiss   int // entries not found in the the unique node table
	opHit        int // entries found in the operator caches
	opMiss       int // entries not found in the operator caches
}

// cacheData is a unit of information stored in the Apply and ITE cache
type cacheData struct {
	res int
	a   int
	b   int
	c   int
}

// ************************************************************

// Different kind of caches used in the bdd

type applycache struct {
	cache          // Cache for apply results
	op    Operator // Current operation during an apply
}

type itecache struct {
	cache // Cache for ITE results
}

type quantcache struct {
	cache     // Cache for exist results
	id    int // Current cache id for quantifications
}

// appexcache are a mix of quant and apply caches
type appexcache struct {
	cache          // Cache for appex results
	id    int      // Current cache id for quantifications
	op    Operator // Current operator for appex
}

// Hash value modifiers for quantification
const cacheidEXIST int = 0x0
const cacheidEXISTFUNC int = 0x1
const cacheidAPPEX int = 0x3

// ************************************************************

// Basic functions shared by all caches

func (bc *cache) init(size int) {
	// we never check if the creation of the slice panic because of lack of memory
	size = primeGte(size)
	bc.table = make([]cacheData, size)
	bc.reset()
}

func (bc *cache) resize(nodesize int) {
	if bc.ratio > 0 {
		bc.init((nodesize * bc.ratio) / 100)
		return
	}
	bc.reset()
}

func (bc *cache) reset() {
	for k := range bc.table {
		bc.table[k].a = -1
	}
}

// *************************************************************************
// Setup and shutdown

func (b *BDD) cacheinit() {
	cachesize := b.configs.cachesize
	if cachesize <= 0 {
		cachesize = len(b.nodes)/5 + 1
	}
	for _, c := range b.caches() {
		c.ratio = b.configs.cacheratio
		c.init(cachesize)
	}
}

func (b *BDD) caches() []*cache {
	return []*cache{&b.applycache.cache, &b.itecache.cache, &b.quantcache.cache, &b.appexcache.cache}
}

func (b *BDD) cachereset() {
	for _, c := range b.caches() {
		c.reset()
	}
}

func (b *BDD) cacheresize() {
	for _, c := range b.caches() {
		c.resize(len(b.nodes))
	}
}

// SetCacheratio sets the cache ratio (%) for the operator caches. When this is
// done the caches are resized instantly to fit the new ratio.
func (b *BDD) SetCacheratio(r int) error {
	if r <= 0 {
		b.seterror("negative ratio (%d) in call to SetCacheratio", r)
		return b.error
	}
	for _, c := range b.caches() {
		c.ratio = r
	}
	b.cacheresize()
	return nil
}

// ************************************************************
//
// Quantification Cache
//

// quantset2cache takes a variable list, similar to the ones generated with
// Makeset, and set the variables in the quantification cache.
func (b *BDD) quantset2cache(n int) error {
	if n < 2 {
		b.seterror("illegal variable (%d) in varset to cache", n)
		return b.error
	}
	b.nextquantset()
	for i := n; i > 1; i = b.nodes[i].high {
		b.quantset[b.nodes[i].level] = b.quantsetID
		b.quantlast = b.nodes[i].level
	}
	return nil
}

// quantpred2cache is the analogue of quantset2cache for a predicate over
// levels. It returns false when no variable is selected.
func (b *BDD) quantpred2cache(pred func(level int) bool) bool {
	b.nextquantset()
	found := false
	for k := int32(0); k < b.varnum; k++ {
		if pred(int(k)) {
			b.quantset[k] = b.quantsetID
			b.quantlast = k
			found = true
		}
	}
	return found
}

func (b *BDD) nextquantset() {
	b.quantsetID++
	if b.quantsetID == math.MaxInt32 {
		b.quantset = make([]int32, b.varnum)
		b.quantsetID = 1
	}
	b.quantlast = -1
}

// ************************************************************

// String prints information about the cache performance. The information
// contains the number of accesses to the unique node table and the number of
// times a node was (not) found there. Hit and miss count is also given for the
// operator caches. Counters are only updated with the debug build tag.
func (c cacheStat) String() string {
	res := fmt.Sprintf("Unique Access:  %d\n", c.uniqueAccess)
	res += fmt.Sprintf("Unique Hit:     %d\n", c.uniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d\n", c.uniqueMiss)
	res += fmt.Sprintf("Operator Hits:  %d\n", c.opHit)
	res += fmt.Sprintf("Operator Miss:  %d", c.opMiss)
	return res
}
