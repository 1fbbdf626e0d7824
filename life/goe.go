// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package life

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/dalzilio/ddbench/bdd"
)

// GardenOfEden returns the number of post states of vm with no predecessor,
// that is the number of solutions of the negation of the relation computed
// by Relation, counted over the post variables only. With the Mirror
// symmetry, only the symmetric states are counted.
func GardenOfEden(ctx context.Context, dd *bdd.BDD, vm *VarMap, opts Options) (*big.Int, error) {
	a, err := NewAssembler(dd, vm, opts)
	if err != nil {
		return nil, err
	}
	rel, err := a.Relation(ctx)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	res := dd.SatcountVars(dd.Not(rel), vm.VarcountOf(Post))
	opts.Diagnostics.Count(start)
	if err := dd.Err(); err != nil {
		return nil, fmt.Errorf("life: counting: %w", err)
	}
	return res, nil
}
