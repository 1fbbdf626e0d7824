// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bdd defines a concrete type for Binary Decision Diagrams (BDD), a data
structure used to efficiently represent Boolean functions over a fixed set of
variables or, equivalently, sets of Boolean vectors with a fixed size.

# Basics

Each BDD has a fixed number of variables, Varnum, declared when it is
initialized (using the function New) and each variable is represented by an
(integer) index in the interval [0..Varnum), called a level. Level 0 is the top
of the diagram; the two constants sit below every variable, at level Varnum.

Most operations over BDD return a Node; that is a pointer to a "vertex" in the
BDD that includes a variable level, and the address of the low and high branch
for this node. We use integer to represent the address of Nodes, with the
convention that 1 (respectively 0) is the address of the constant function True
(respectively False).

# Direct construction

Besides the usual Boolean operations (Apply, Ite, Not, Exist, ...) the package
gives access to raw node construction with MakeNode. This bypasses the
operation caches entirely and is the building block for algorithms that
assemble a diagram bottom-up in the variable order, such as the ones in package
build. MakeNode still goes through the unicity table, so the result is always a
reduced and canonical BDD.

# Automatic memory management

The library is written in pure Go. We piggyback on the garbage collection
mechanism offered by the host language: every Node returned to the caller
carries a finalizer, and the reference count of the corresponding vertex is
decremented once the Go runtime reclaims the pointer. Vertices that are not
referenced anymore are reclaimed the next time the node table is full; the
table is resized when too few vertices are freed.

# Use of build tags

To get access to better statistics about caches and garbage collection, as
well as to unlock logging of some operations, you can compile your executable
with the build tag `debug`.
*/
package bdd
