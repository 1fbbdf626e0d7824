// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package life

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"math/big"
	"testing"

	"github.com/dalzilio/ddbench/bdd"
)

// bruteForce counts the Garden-of-Eden states of a small grid by enumerating
// every pre state.
func bruteForce(g Grid, sym Symmetry, b Boundary) int64 {
	width := g.Cols + 2
	bit := func(row, col int) uint { return uint(row*width + col) }
	var interior []uint
	for r := 1; r <= g.Rows; r++ {
		for c := 1; c <= g.Cols; c++ {
			interior = append(interior, bit(r, c))
		}
	}
	nbits := g.Size(Pre)
	if b == Dead {
		nbits = len(interior)
	}
	reachable := make([]bool, 1<<(g.Rows*g.Cols))
	for m := uint64(0); m < 1<<nbits; m++ {
		pre := m
		if b == Dead {
			pre = 0
			for i, x := range interior {
				if m&(1<<i) != 0 {
					pre |= 1 << x
				}
			}
		}
		post := 0
		for r := 1; r <= g.Rows; r++ {
			for c := 1; c <= g.Cols; c++ {
				alive := 0
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						if pre&(1<<bit(r+dr, c+dc)) != 0 {
							alive++
						}
					}
				}
				self := pre&(1<<bit(r, c)) != 0
				if alive == 3 || (alive == 4 && self) {
					post |= 1 << ((r-1)*g.Cols + c - 1)
				}
			}
		}
		reachable[post] = true
	}
	var res int64
	for post, ok := range reachable {
		if ok {
			continue
		}
		if sym == Mirror && !symmetric(g, post) {
			continue
		}
		res++
	}
	return res
}

func symmetric(g Grid, post int) bool {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			m := g.Cols - 1 - c
			if (post>>(r*g.Cols+c))&1 != (post>>(r*g.Cols+m))&1 {
				return false
			}
		}
	}
	return true
}

func newGame(t *testing.T, rows, cols int, sym Symmetry) (*bdd.BDD, *VarMap) {
	t.Helper()
	g, err := NewGrid(rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	vm, err := NewVarMap(g, sym)
	if err != nil {
		t.Fatal(err)
	}
	dd, err := bdd.New(vm.Varcount(), bdd.Nodesize(10000), bdd.Cachesize(1000))
	if err != nil {
		t.Fatal(err)
	}
	return dd, vm
}

func goe(t *testing.T, rows, cols int, sym Symmetry, opts Options) *big.Int {
	t.Helper()
	dd, vm := newGame(t, rows, cols, sym)
	res, err := GardenOfEden(context.Background(), dd, vm, opts)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestGardenOfEdenBruteForce(t *testing.T) {
	for _, b := range []Boundary{Free, Dead} {
		for _, sym := range []Symmetry{None, Mirror} {
			for rows := 1; rows <= 4; rows++ {
				for cols := 1; cols <= 4; cols++ {
					g := Grid{Rows: rows, Cols: cols}
					if b == Free && g.Size(Pre) > 20 {
						continue
					}
					if b == Dead && rows*cols > 12 {
						continue
					}
					name := fmt.Sprintf("%s/%s/%dx%d", b, sym, rows, cols)
					t.Run(name, func(t *testing.T) {
						expected := bruteForce(g, sym, b)
						if res := goe(t, rows, cols, sym, Options{Boundary: b}); res.Int64() != expected {
							t.Errorf("GardenOfEden: expected %d, actual %s", expected, res)
						}
					})
				}
			}
		}
	}
}

func TestGardenOfEdenFixtures(t *testing.T) {
	var fixtures = []struct {
		rows, cols int
		sym        Symmetry
		boundary   Boundary
		expected   int64
	}{
		{1, 1, None, Dead, 1},
		{2, 2, None, Dead, 14},
		{2, 2, Mirror, Dead, 2},
		{2, 3, None, Dead, 54},
		{2, 3, Mirror, Dead, 12},
		{3, 2, Mirror, Dead, 2},
		{1, 5, None, Dead, 25},
		{1, 5, Mirror, Dead, 5},
		{3, 3, None, Dead, 315},
		{3, 3, Mirror, Dead, 29},
		{2, 2, None, Free, 0},
		{3, 3, None, Free, 0},
		{3, 3, Mirror, Free, 0},
	}
	for _, f := range fixtures {
		t.Run(fmt.Sprintf("%s/%s/%dx%d", f.boundary, f.sym, f.rows, f.cols), func(t *testing.T) {
			if f.rows*f.cols > 6 && testing.Short() {
				t.Skip("skipping in short mode")
			}
			res := goe(t, f.rows, f.cols, f.sym, Options{Boundary: f.boundary})
			if res.Cmp(big.NewInt(f.expected)) != 0 {
				t.Errorf("expected %d, actual %s", f.expected, res)
			}
		})
	}
}

func TestSingleCellDeadBorder(t *testing.T) {
	dd, vm := newGame(t, 1, 1, None)
	a, err := NewAssembler(dd, vm, Options{Boundary: Dead})
	if err != nil {
		t.Fatal(err)
	}
	g := vm.Grid()
	post := vm.MustVar(g.Cell(1, 1, Post))
	// no live neighbour can ever exist, so the cell is dead afterward
	expected := dd.NIthvar(post)
	for row := g.MinRow(Pre); row <= g.MaxRow(Pre); row++ {
		for col := g.MinCol(Pre); col <= g.MaxCol(Pre); col++ {
			if c := g.Cell(row, col, Pre); g.OnBorder(c) {
				expected = dd.And(expected, dd.NIthvar(vm.MustVar(c)))
			}
		}
	}
	rel, err := a.RowRelation(1)
	if err != nil {
		t.Fatal(err)
	}
	if !dd.Equal(rel, expected) {
		t.Errorf("RowRelation(1): expected %s, actual %s", dd.Print(expected), dd.Print(rel))
	}
	rel, err = a.Relation(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !dd.Equal(rel, dd.NIthvar(post)) {
		t.Errorf("Relation: expected the post cell to be dead, actual %s", dd.Print(rel))
	}
}

func TestCellRelation(t *testing.T) {
	dd, vm := newGame(t, 1, 1, None)
	a, err := NewAssembler(dd, vm, Options{})
	if err != nil {
		t.Fatal(err)
	}
	c := vm.Grid().Cell(1, 1, Post)
	rel, err := a.CellRelation(c)
	if err != nil {
		t.Fatal(err)
	}
	hood := vm.Grid().Neighbourhood(c)
	self := vm.MustVar(c.As(Pre))
	post := vm.MustVar(c)
	for m := 0; m < 1<<9; m++ {
		assignment := make([]bool, vm.Varcount())
		alive := 0
		for i, h := range hood {
			if m&(1<<i) != 0 {
				assignment[vm.MustVar(h)] = true
				alive++
			}
		}
		for _, next := range []bool{false, true} {
			assignment[post] = next
			expected := next == (alive == 3 || (alive == 4 && assignment[self]))
			if actual := eval(dd, rel, assignment); actual != expected {
				t.Fatalf("neighbourhood %09b, post %v: expected %v, actual %v", m, next, expected, actual)
			}
		}
	}
}

func eval(dd *bdd.BDD, n bdd.Node, assignment []bool) bool {
	for *n > 1 {
		if assignment[dd.Label(n)] {
			n = dd.High(n)
		} else {
			n = dd.Low(n)
		}
	}
	return *n == 1
}

func TestAccumulationOrder(t *testing.T) {
	for _, size := range [][2]int{{2, 2}, {3, 2}, {4, 3}, {5, 2}} {
		for _, sym := range []Symmetry{None, Mirror} {
			t.Run(fmt.Sprintf("%s/%dx%d", sym, size[0], size[1]), func(t *testing.T) {
				dd, vm := newGame(t, size[0], size[1], sym)
				rel := make([]bdd.Node, 2)
				for i, bottom := range []bool{false, true} {
					a, err := NewAssembler(dd, vm, Options{Boundary: Dead, BottomFirst: bottom})
					if err != nil {
						t.Fatal(err)
					}
					if rel[i], err = a.Relation(context.Background()); err != nil {
						t.Fatal(err)
					}
				}
				if !dd.Equal(rel[0], rel[1]) {
					t.Errorf("relation depends on the order of the sweeps")
				}
				// the same relation without any early quantification
				a, _ := NewAssembler(dd, vm, Options{Boundary: Dead})
				naive := dd.True()
				for row := 1; row <= size[0]; row++ {
					r, err := a.RowRelation(row)
					if err != nil {
						t.Fatal(err)
					}
					naive = dd.And(naive, r)
				}
				naive = dd.ExistFunc(naive, vm.IsPre(func(Cell) bool { return true }))
				if !dd.Equal(rel[0], naive) {
					t.Errorf("early quantification changes the relation")
				}
			})
		}
	}
}

func TestSweepQuantifiesEdgeRows(t *testing.T) {
	dd, vm := newGame(t, 4, 2, None)
	a, err := NewAssembler(dd, vm, Options{})
	if err != nil {
		t.Fatal(err)
	}
	var sweepTests = []struct {
		edge   Edge
		gone   []int // pre rows that must be quantified
		stayed []int // pre rows still read by the other half
	}{
		{Top, []int{0, 1}, []int{2}},
		{Bottom, []int{5, 4}, []int{3}},
	}
	for _, tt := range sweepTests {
		rel, err := a.Sweep(context.Background(), tt.edge)
		if err != nil {
			t.Fatal(err)
		}
		support := map[int]bool{}
		err = dd.Allnodes(func(id, level, low, high int) error {
			support[level] = true
			return nil
		}, rel)
		if err != nil {
			t.Fatal(err)
		}
		for _, row := range tt.gone {
			for _, x := range vm.Vars(func(c Cell) bool { return c.Phase == Pre && c.Row == row }) {
				if support[x] {
					t.Errorf("%s sweep: pre variable %d of row %d not quantified", tt.edge, x, row)
				}
			}
		}
		for _, row := range tt.stayed {
			found := false
			for _, x := range vm.Vars(func(c Cell) bool { return c.Phase == Pre && c.Row == row }) {
				found = found || support[x]
			}
			if !found {
				t.Errorf("%s sweep: row %d quantified too early", tt.edge, row)
			}
		}
	}
}

func TestDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	d := &Diagnostics{Logger: log.New(&buf, "", 0)}
	dd, vm := newGame(t, 3, 2, None)
	if _, err := GardenOfEden(context.Background(), dd, vm, Options{Diagnostics: d}); err != nil {
		t.Fatal(err)
	}
	if d.LargestNodecount == 0 || d.Steps == 0 {
		t.Errorf("no step recorded: %+v", d)
	}
	if buf.Len() == 0 {
		t.Errorf("nothing logged")
	}
	if d.Total() < d.ApplyTime {
		t.Errorf("total time smaller than apply time")
	}
}

func TestCancelled(t *testing.T) {
	dd, vm := newGame(t, 2, 2, None)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := GardenOfEden(ctx, dd, vm, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, actual %v", err)
	}
}

func TestSmallEngine(t *testing.T) {
	g, _ := NewGrid(4, 4)
	vm, _ := NewVarMap(g, None)
	dd, err := bdd.New(vm.Varcount(), bdd.Nodesize(300), bdd.Maxnodesize(500), bdd.Cachesize(50))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := GardenOfEden(context.Background(), dd, vm, Options{}); err == nil {
		t.Errorf("expected an error with a bounded node table")
	}
}

func BenchmarkGardenOfEden(b *testing.B) {
	g, _ := NewGrid(4, 4)
	for _, sym := range []Symmetry{None, Mirror} {
		b.Run(sym.String(), func(b *testing.B) {
			vm, _ := NewVarMap(g, sym)
			for i := 0; i < b.N; i++ {
				dd, _ := bdd.New(vm.Varcount(), bdd.Nodesize(100000), bdd.Cachesize(10000))
				if _, err := GardenOfEden(context.Background(), dd, vm, Options{}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
