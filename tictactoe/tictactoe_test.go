// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tictactoe

import (
	"context"
	"math/big"
	"testing"

	"github.com/dalzilio/ddbench/bdd"
	"github.com/dalzilio/ddbench/internal/diag"
)

func newBDD(t testing.TB) *bdd.BDD {
	t.Helper()
	dd, err := bdd.New(Varnum, bdd.Nodesize(100000), bdd.Cachesize(10000))
	if err != nil {
		t.Fatal(err)
	}
	return dd
}

func TestLines(t *testing.T) {
	lines := Lines()
	if len(lines) != 76 {
		t.Fatalf("expected 76 lines, actual %d", len(lines))
	}
	seen := map[Line]bool{}
	for _, l := range lines {
		var coords [Side][3]int
		for t, x := range l {
			coords[t] = [3]int{x / (Side * Side), (x / Side) % Side, x % Side}
		}
		// each coordinate is constant, increasing or decreasing by one
		for c := 0; c < 3; c++ {
			step := coords[1][c] - coords[0][c]
			if step < -1 || step > 1 {
				t.Errorf("line %v is not straight", l)
			}
			for s := 1; s < Side; s++ {
				if coords[s][c]-coords[s-1][c] != step {
					t.Errorf("line %v is not straight", l)
				}
			}
		}
		key := l
		if key[0] > key[Side-1] {
			for i, j := 0, Side-1; i < j; i, j = i+1, j-1 {
				key[i], key[j] = key[j], key[i]
			}
		}
		if seen[key] {
			t.Errorf("line %v appears twice", l)
		}
		seen[key] = true
	}
}

// notWinningIte is the construction of NotWinning with Ite.
func notWinningIte(dd *bdd.BDD, l Line) bdd.Node {
	noX := dd.False()
	onlyX := dd.False()
	for idx := Side - 1; idx >= 0; idx-- {
		high := dd.True()
		if idx == 0 {
			high = onlyX
		}
		noX = dd.Ite(dd.Ithvar(l[idx]), high, noX)
		if idx > 0 {
			onlyX = dd.Ite(dd.Ithvar(l[idx]), onlyX, dd.True())
		}
	}
	return noX
}

func TestNotWinning(t *testing.T) {
	dd := newBDD(t)
	for _, l := range Lines() {
		n, err := NotWinning(dd, l)
		if err != nil {
			t.Fatal(err)
		}
		if expected := notWinningIte(dd, l); !dd.Equal(n, expected) {
			t.Errorf("line %v: direct construction differs from Ite", l)
		}
	}
}

func TestCountTooFewCrosses(t *testing.T) {
	// the 16 lines along the last axis are disjoint and each needs a cross
	for _, n := range []int{0, 8, 15, 49, 64} {
		res, err := Count(context.Background(), newBDD(t), n, nil)
		if err != nil {
			t.Fatal(err)
		}
		if res.Sign() != 0 {
			t.Errorf("Count(%d): expected 0, actual %s", n, res)
		}
	}
}

func TestCount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	var countTests = []struct {
		n        int
		expected int64
	}{
		{20, 304},
		{44, 304},
	}
	for _, tt := range countTests {
		res, err := Count(context.Background(), newBDD(t), tt.n, nil)
		if err != nil {
			t.Fatal(err)
		}
		if res.Cmp(big.NewInt(tt.expected)) != 0 {
			t.Errorf("Count(%d): expected %d, actual %s", tt.n, tt.expected, res)
		}
	}
}

func TestCountSymmetry(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	// exchanging crosses and noughts preserves draws
	d := &diag.Diagnostics{}
	a, err := Count(context.Background(), newBDD(t), DefaultCrosses, d)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Count(context.Background(), newBDD(t), Varnum-DefaultCrosses, nil)
	if err != nil {
		t.Fatal(err)
	}
	if a.Cmp(b) != 0 {
		t.Errorf("expected Count(%d) == Count(%d), actual %s and %s", DefaultCrosses, Varnum-DefaultCrosses, a, b)
	}
	if a.Cmp(big.NewInt(0)) <= 0 {
		t.Errorf("expected some draws with %d crosses", DefaultCrosses)
	}
	if d.LargestNodecount == 0 {
		t.Errorf("no diagnostics recorded")
	}
}

func TestCountVarnum(t *testing.T) {
	dd, _ := bdd.New(10)
	if _, err := Count(context.Background(), dd, 3, nil); err == nil {
		t.Errorf("expected an error with a BDD of the wrong size")
	}
}
