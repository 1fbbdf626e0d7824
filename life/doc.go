// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package life counts the Garden-of-Eden states of Conway's Game of Life on a
finite grid: the states with no predecessor under one application of the
rule.

The transition relation is encoded in a BDD over two copies of the grid. The
pre copy has a one-cell border around the post (interior) grid, so that every
interior cell has a full neighbourhood. The relation of each interior cell is
built with the direct constructions of package build, rows are conjoined in
two sweeps from the top and bottom edges, and every row of pre variables is
quantified as soon as no remaining row relation refers to it. The count is
then obtained from the negation of the relation, over the post variables only.
*/
package life
