// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package life

import (
	"errors"
	"fmt"
)

// Phase tells if a cell belongs to the state before (Pre) or after (Post) one
// step of the rule.
type Phase uint8

const (
	Pre Phase = iota
	Post
)

func (p Phase) String() string {
	if p == Post {
		return "post"
	}
	return "pre"
}

// ErrGrid is returned when a grid has non positive dimensions.
var ErrGrid = errors.New("invalid grid dimensions")

// Grid gives the dimensions of the interior (post) grid. Rows and columns of
// the post phase are numbered from 1 to Rows (resp. Cols), while those of the
// pre phase go from 0 to Rows+1 (resp. Cols+1).
type Grid struct {
	Rows, Cols int
}

// NewGrid returns a grid with the given interior dimensions.
func NewGrid(rows, cols int) (Grid, error) {
	if rows < 1 || cols < 1 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrGrid, rows, cols)
	}
	return Grid{Rows: rows, Cols: cols}, nil
}

// MinRow returns the index of the first row of phase p.
func (g Grid) MinRow(p Phase) int {
	if p == Post {
		return 1
	}
	return 0
}

// MaxRow returns the index of the last row of phase p.
func (g Grid) MaxRow(p Phase) int {
	if p == Post {
		return g.Rows
	}
	return g.Rows + 1
}

// MinCol returns the index of the first column of phase p.
func (g Grid) MinCol(p Phase) int {
	return g.MinRow(p)
}

// MaxCol returns the index of the last column of phase p.
func (g Grid) MaxCol(p Phase) int {
	if p == Post {
		return g.Cols
	}
	return g.Cols + 1
}

// Size returns the number of cells of phase p.
func (g Grid) Size(p Phase) int {
	return (g.MaxRow(p) - g.MinRow(p) + 1) * (g.MaxCol(p) - g.MinCol(p) + 1)
}

// Contains tells if c is within the bounds of its phase.
func (g Grid) Contains(c Cell) bool {
	return g.MinRow(c.Phase) <= c.Row && c.Row <= g.MaxRow(c.Phase) &&
		g.MinCol(c.Phase) <= c.Col && c.Col <= g.MaxCol(c.Phase)
}

// Cell returns the cell at (row, col) in phase p. It panics if the cell is
// outside the bounds of its phase.
func (g Grid) Cell(row, col int, p Phase) Cell {
	c := Cell{Row: row, Col: col, Phase: p}
	if !g.Contains(c) {
		panic(fmt.Sprintf("life: cell %s outside of a %dx%d grid", c, g.Rows, g.Cols))
	}
	return c
}

// OnBorder tells if c is a pre cell without a post counterpart.
func (g Grid) OnBorder(c Cell) bool {
	return c.Phase == Pre && !g.Contains(c.As(Post))
}

// Neighbourhood returns the nine pre cells around the post cell c, c itself
// included, in row-major order.
func (g Grid) Neighbourhood(c Cell) []Cell {
	if c.Phase != Post {
		panic(fmt.Sprintf("life: neighbourhood of pre cell %s", c))
	}
	res := make([]Cell, 0, 9)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			res = append(res, g.Cell(c.Row+dr, c.Col+dc, Pre))
		}
	}
	return res
}

// Cell is a position in the pre or post grid.
type Cell struct {
	Row, Col int
	Phase    Phase
}

// As returns the cell at the same position in phase p. The result is not
// checked against the grid bounds.
func (c Cell) As(p Phase) Cell {
	return Cell{Row: c.Row, Col: c.Col, Phase: p}
}

// InNeighbourhood tells if o is at distance at most one of c, in both
// directions.
func (c Cell) InNeighbourhood(o Cell) bool {
	return abs(c.Row-o.Row) <= 1 && abs(c.Col-o.Col) <= 1
}

// String returns the row number, the column letter, and a quote for post
// cells, like 2B'.
func (c Cell) String() string {
	res := fmt.Sprintf("%d%c", c.Row, rune('A'+c.Col-1))
	if c.Col < 1 || c.Col > 26 {
		res = fmt.Sprintf("%d[%d]", c.Row, c.Col)
	}
	if c.Phase == Post {
		res += "'"
	}
	return res
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
