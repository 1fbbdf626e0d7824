// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package build constructs decision diagrams directly, by chaining nodes in the
fixed variable order of a BDD, instead of combining literals with generic
operations.

Every builder follows the same protocol on a Chain value: a call to Start
allocates a set of slots, the diagram is then assembled from the bottom
variable up to the top one with Set, Branch and Skip, and Finalize returns the
content of one slot and consumes the chain. The cost of a construction is
bounded by the number of slots times the number of variables visited.
*/
package build
