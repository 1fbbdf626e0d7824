// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package life

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a cell is outside the grid or has no
// variable in a VarMap.
var ErrOutOfRange = errors.New("cell out of range")

// VarMap associates a BDD variable with each cell of the pre and post grids.
//
// Variables are allocated row by row, following the pre grid. Inside a row,
// each pre cell is immediately followed by its post cell, when it has one.
// With the Mirror symmetry, columns are enumerated from the outside in, by
// pairs of mirrored columns: the two pre cells come first, followed by the
// single variable shared by the two post cells.
//
// This gives two locality guarantees, used to schedule quantifications and
// to keep the construction of equality constraints short:
//
//   - the variable of a post cell is above the one of the pre cell at the
//     same position by at least one and at most PairSpan;
//   - the variables allocated for pre row r, and the post cells enumerated
//     with it, form the interval RowSpan(r); intervals of successive rows
//     are disjoint and increasing.
type VarMap struct {
	grid  Grid
	sym   Symmetry
	vars  map[Cell]int
	cells []Cell   // canonical cell of each variable
	spans [][2]int // variables allocated for each pre row
	count [2]int   // number of variables per phase
}

// NewVarMap returns the variable map of grid g for symmetry sym.
func NewVarMap(g Grid, sym Symmetry) (*VarMap, error) {
	if g.Rows < 1 || g.Cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGrid, g.Rows, g.Cols)
	}
	if sym != None && sym != Mirror {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymmetry, sym)
	}
	vm := &VarMap{
		grid: g,
		sym:  sym,
		vars: make(map[Cell]int, g.Size(Pre)+g.Size(Post)),
	}
	for row := g.MinRow(Pre); row <= g.MaxRow(Pre); row++ {
		lo := len(vm.cells)
		if sym == None {
			for col := g.MinCol(Pre); col <= g.MaxCol(Pre); col++ {
				pre := Cell{Row: row, Col: col, Phase: Pre}
				vm.alloc(pre)
				if post := pre.As(Post); g.Contains(post) {
					vm.alloc(post)
				}
			}
		} else {
			for left := g.MinCol(Pre); left <= g.MaxCol(Pre)-left; left++ {
				right := g.MaxCol(Pre) - left
				pre := Cell{Row: row, Col: left, Phase: Pre}
				vm.alloc(pre)
				if left < right {
					vm.alloc(Cell{Row: row, Col: right, Phase: Pre})
				}
				if post := pre.As(Post); g.Contains(post) {
					x := vm.alloc(post)
					if left < right {
						vm.vars[Cell{Row: row, Col: right, Phase: Post}] = x
					}
				}
			}
		}
		vm.spans = append(vm.spans, [2]int{lo, len(vm.cells) - 1})
	}
	return vm, nil
}

func (vm *VarMap) alloc(c Cell) int {
	x := len(vm.cells)
	vm.vars[c] = x
	vm.cells = append(vm.cells, c)
	vm.count[c.Phase]++
	return x
}

// Grid returns the grid of vm.
func (vm *VarMap) Grid() Grid {
	return vm.grid
}

// Symmetry returns the symmetry used to allocate the variables of vm.
func (vm *VarMap) Symmetry() Symmetry {
	return vm.sym
}

// Var returns the variable associated with cell c.
func (vm *VarMap) Var(c Cell) (int, error) {
	x, ok := vm.vars[c]
	if !ok {
		return -1, fmt.Errorf("%w: %s in a %dx%d grid", ErrOutOfRange, c, vm.grid.Rows, vm.grid.Cols)
	}
	return x, nil
}

// MustVar is like Var but panics if c has no variable.
func (vm *VarMap) MustVar(c Cell) int {
	x, err := vm.Var(c)
	if err != nil {
		panic(err)
	}
	return x
}

// Cell returns the canonical cell of variable x. For a variable shared by two
// mirrored post cells, this is the one on the left.
func (vm *VarMap) Cell(x int) (Cell, error) {
	if x < 0 || x >= len(vm.cells) {
		return Cell{}, fmt.Errorf("%w: variable %d not in [0, %d)", ErrOutOfRange, x, len(vm.cells))
	}
	return vm.cells[x], nil
}

// CellFor returns candidate if it is associated with variable x, and the
// canonical cell of x otherwise.
func (vm *VarMap) CellFor(x int, candidate Cell) (Cell, error) {
	if y, ok := vm.vars[candidate]; ok && y == x {
		return candidate, nil
	}
	return vm.Cell(x)
}

// Varcount returns the total number of variables.
func (vm *VarMap) Varcount() int {
	return len(vm.cells)
}

// VarcountOf returns the number of variables of phase p. For the pre phase
// this is always the number of pre cells.
func (vm *VarMap) VarcountOf(p Phase) int {
	return vm.count[p]
}

// Vars returns, in increasing order, the variables whose canonical cell
// satisfies pred.
func (vm *VarMap) Vars(pred func(Cell) bool) []int {
	var res []int
	for x, c := range vm.cells {
		if pred(c) {
			res = append(res, x)
		}
	}
	return res
}

// PairSpan is the largest distance between the variable of a post cell and
// the one of the pre cell at the same position.
func (vm *VarMap) PairSpan() int {
	if vm.sym == Mirror {
		return 2
	}
	return 1
}

// RowSpan returns the interval of variables allocated while enumerating pre
// row row. It contains the pre variables of the row and, for interior rows,
// its post variables.
func (vm *VarMap) RowSpan(row int) (lo, hi int, err error) {
	if row < vm.grid.MinRow(Pre) || row > vm.grid.MaxRow(Pre) {
		return -1, -1, fmt.Errorf("%w: row %d", ErrOutOfRange, row)
	}
	s := vm.spans[row-vm.grid.MinRow(Pre)]
	return s[0], s[1], nil
}

// IsPre returns a predicate on levels that selects the pre variables of vm
// for which keep returns true.
func (vm *VarMap) IsPre(keep func(Cell) bool) func(level int) bool {
	return func(level int) bool {
		if level < 0 || level >= len(vm.cells) {
			return false
		}
		c := vm.cells[level]
		return c.Phase == Pre && keep(c)
	}
}
