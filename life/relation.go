// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package life

import (
	"context"
	"fmt"
	"sort"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dalzilio/ddbench/bdd"
	"github.com/dalzilio/ddbench/build"
)

var tracer = otel.Tracer("github.com/dalzilio/ddbench/life")

// Edge selects the starting side of a sweep.
type Edge int

const (
	Top Edge = iota
	Bottom
)

func (e Edge) String() string {
	if e == Bottom {
		return "bottom"
	}
	return "top"
}

// Options are the parameters of an Assembler.
type Options struct {
	Boundary    Boundary     // condition on the border pre cells
	BottomFirst bool         // run the bottom sweep before the top one
	Diagnostics *Diagnostics // optional, may be nil
}

// Assembler builds the transition relation of the Game of Life over the
// variables of a VarMap.
type Assembler struct {
	dd   *bdd.BDD
	vm   *VarMap
	opts Options
}

// NewAssembler returns an assembler for the variables of vm. The BDD must
// have at least vm.Varcount() variables.
func NewAssembler(dd *bdd.BDD, vm *VarMap, opts Options) (*Assembler, error) {
	if dd.Varnum() < vm.Varcount() {
		return nil, fmt.Errorf("life: BDD has %d variables, need %d", dd.Varnum(), vm.Varcount())
	}
	if opts.Boundary != Free && opts.Boundary != Dead {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBoundary, opts.Boundary)
	}
	return &Assembler{dd: dd, vm: vm, opts: opts}, nil
}

// CellRelation returns the relation between the neighbourhood of the post
// cell c and its value. With alive the number of live cells among the nine
// pre cells of the neighbourhood, c itself included: c is alive when alive is
// 3, keeps its value when alive is 4, and is dead otherwise.
func (a *Assembler) CellRelation(c Cell) (bdd.Node, error) {
	hood := a.vm.grid.Neighbourhood(c)
	vars := make([]int, len(hood))
	for i, h := range hood {
		vars[i] = a.vm.MustVar(h)
	}
	pre := a.vm.MustVar(c.As(Pre))
	post := a.vm.MustVar(c)
	alive3, err := build.Threshold(a.dd, vars, 3)
	if err != nil {
		return nil, err
	}
	alive4, err := build.Threshold(a.dd, vars, 4)
	if err != nil {
		return nil, err
	}
	eq, err := build.Equal(a.dd, pre, post)
	if err != nil {
		return nil, err
	}
	res := a.dd.Imp(alive3, a.dd.Ithvar(post))
	res = a.dd.And(res, a.dd.Imp(alive4, eq))
	other := a.dd.Not(a.dd.Or(alive3, alive4))
	res = a.dd.And(res, a.dd.Imp(other, a.dd.NIthvar(post)))
	if err := a.dd.Err(); err != nil {
		return nil, fmt.Errorf("life: relation of %s: %w", c, err)
	}
	return res, nil
}

// RowRelation returns the conjunction of the relations of the cells in
// interior row row, built from the last column to the first. With the Dead
// boundary, it also states that the border cells read by the row are dead.
func (a *Assembler) RowRelation(row int) (bdd.Node, error) {
	g := a.vm.grid
	if row < g.MinRow(Post) || row > g.MaxRow(Post) {
		return nil, fmt.Errorf("%w: row %d", ErrOutOfRange, row)
	}
	res := a.dd.True()
	border := mapset.NewThreadUnsafeSet[int]()
	for col := g.MaxCol(Post); col >= g.MinCol(Post); col-- {
		c := g.Cell(row, col, Post)
		rel, err := a.CellRelation(c)
		if err != nil {
			return nil, err
		}
		res = a.dd.And(res, rel)
		if a.opts.Boundary == Dead {
			for _, h := range g.Neighbourhood(c) {
				if g.OnBorder(h) {
					border.Add(a.vm.MustVar(h))
				}
			}
		}
	}
	if border.Cardinality() > 0 {
		res = a.dd.And(res, a.deadCube(border.ToSlice()))
	}
	if err := a.dd.Err(); err != nil {
		return nil, fmt.Errorf("life: relation of row %d: %w", row, err)
	}
	return res, nil
}

// deadCube returns the conjunction of the negative literals of vars, built
// directly from the bottom.
func (a *Assembler) deadCube(vars []int) bdd.Node {
	sort.Sort(sort.Reverse(sort.IntSlice(vars)))
	res := a.dd.True()
	for _, x := range vars {
		res = a.dd.MakeNode(x, res, a.dd.False())
	}
	return res
}

// sweepRows returns the interior rows handled by the sweep from edge e, in
// processing order.
func (a *Assembler) sweepRows(e Edge) []int {
	g := a.vm.grid
	half := g.Rows / 2
	rows := make([]int, 0, half)
	for i := 0; i < half; i++ {
		if e == Top {
			rows = append(rows, g.MinRow(Post)+i)
		} else {
			rows = append(rows, g.MaxRow(Post)-i)
		}
	}
	return rows
}

// Sweep conjoins the relations of half of the interior rows, starting from
// edge e and moving toward the middle. After each row, the pre rows that are
// only read by rows already conjoined in this sweep are quantified.
func (a *Assembler) Sweep(ctx context.Context, e Edge) (bdd.Node, error) {
	ctx, span := tracer.Start(ctx, "life.Sweep", trace.WithAttributes(attribute.String("edge", e.String())))
	defer span.End()
	res, err := a.accumulate(ctx, e.String(), a.sweepRows(e))
	if err != nil {
		span.RecordError(err)
	}
	return res, err
}

// accumulate conjoins the relations of rows, in order, with the
// quantification schedule of Sweep.
func (a *Assembler) accumulate(ctx context.Context, name string, rows []int) (bdd.Node, error) {
	g := a.vm.grid
	d := a.opts.Diagnostics
	done := mapset.NewThreadUnsafeSet[int]()
	quantified := mapset.NewThreadUnsafeSet[int]()
	res := a.dd.True()
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("life: %s sweep at row %d: %w", name, row, err)
		}
		_, span := tracer.Start(ctx, "life.Row", trace.WithAttributes(attribute.Int("row", row)))
		start := time.Now()
		rel, err := a.RowRelation(row)
		if err != nil {
			span.End()
			return nil, err
		}
		res = a.dd.And(res, rel)
		d.Apply(start)
		done.Add(row)
		if err := a.dd.Err(); err != nil {
			span.End()
			return nil, fmt.Errorf("life: %s sweep at row %d: %w", name, row, err)
		}
		if d.Enabled() {
			d.Observe(fmt.Sprintf("Acc [%d]", row), a.dd.Nodecount(res))
		}
		for p := row - 1; p <= row+1; p++ {
			if p < g.MinRow(Pre) || p > g.MaxRow(Pre) || quantified.Contains(p) {
				continue
			}
			if !readers(g, p).IsSubset(done) {
				continue
			}
			res, err = a.quantify(res, p)
			if err != nil {
				span.End()
				return nil, err
			}
			quantified.Add(p)
		}
		span.End()
	}
	return res, nil
}

// readers returns the interior rows whose relation reads pre row p.
func readers(g Grid, p int) mapset.Set[int] {
	res := mapset.NewThreadUnsafeSet[int]()
	for r := p - 1; r <= p+1; r++ {
		if r >= g.MinRow(Post) && r <= g.MaxRow(Post) {
			res.Add(r)
		}
	}
	return res
}

// quantify removes the pre variables of row p from n.
func (a *Assembler) quantify(n bdd.Node, p int) (bdd.Node, error) {
	d := a.opts.Diagnostics
	start := time.Now()
	res := a.dd.ExistFunc(n, a.vm.IsPre(func(c Cell) bool { return c.Row == p }))
	d.Exists(start)
	if err := a.dd.Err(); err != nil {
		return nil, fmt.Errorf("life: quantification of row %d: %w", p, err)
	}
	if d.Enabled() {
		d.Observe(fmt.Sprintf("Exi [%d]", p), a.dd.Nodecount(res))
	}
	return res, nil
}

// Relation returns the transition relation of the whole grid with every pre
// variable quantified, that is the set of post states that have a
// predecessor.
func (a *Assembler) Relation(ctx context.Context) (bdd.Node, error) {
	ctx, span := tracer.Start(ctx, "life.Relation", trace.WithAttributes(
		attribute.Int("rows", a.vm.grid.Rows),
		attribute.Int("cols", a.vm.grid.Cols),
		attribute.String("symmetry", a.vm.sym.String()),
		attribute.String("boundary", a.opts.Boundary.String()),
	))
	defer span.End()
	edges := []Edge{Top, Bottom}
	if a.opts.BottomFirst {
		edges = []Edge{Bottom, Top}
	}
	res := a.dd.True()
	for _, e := range edges {
		half, err := a.Sweep(ctx, e)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		start := time.Now()
		res = a.dd.And(res, half)
		a.opts.Diagnostics.Apply(start)
	}
	g := a.vm.grid
	if g.Rows%2 == 1 {
		mid, err := a.accumulate(ctx, "middle", []int{g.Rows/2 + 1})
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		start := time.Now()
		res = a.dd.And(res, mid)
		a.opts.Diagnostics.Apply(start)
	}
	if err := a.dd.Err(); err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	d := a.opts.Diagnostics
	if d.Enabled() {
		d.Observe("Acc [*]", a.dd.Nodecount(res))
	}
	start := time.Now()
	res = a.dd.ExistFunc(res, a.vm.IsPre(func(Cell) bool { return true }))
	d.Exists(start)
	if err := a.dd.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("life: final quantification: %w", err)
	}
	if d.Enabled() {
		d.Observe("Exi [*]", a.dd.Nodecount(res))
	}
	return res, nil
}
