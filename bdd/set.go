// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// And returns the conjunction of nodes. Operands are combined from the last
// one to the first, and the fold stops as soon as the result is False or an
// error occurred. The conjunction of no node is True.
func (b *BDD) And(n ...Node) Node {
	return b.fold(n, OPand, bddone, bddzero)
}

// Or returns the disjunction of nodes, folded like And. The disjunction of no
// node is False.
func (b *BDD) Or(n ...Node) Node {
	return b.fold(n, OPor, bddzero, bddone)
}

// fold combines n with op from right to left, starting from unit and stopping
// on absorb.
func (b *BDD) fold(n []Node, op Operator, unit, absorb Node) Node {
	if len(n) == 0 {
		return unit
	}
	for _, x := range n {
		if x == nil {
			return b.seterror("nil operand in %s", op)
		}
	}
	res := n[len(n)-1]
	for i := len(n) - 2; i >= 0; i-- {
		if res == nil || b.Equal(res, absorb) {
			break
		}
		res = b.Apply(n[i], res, op)
	}
	return res
}

// Xor returns the exclusive or of n1 and n2.
func (b *BDD) Xor(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPxor)
}

// Imp returns the implication n1 => n2.
func (b *BDD) Imp(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPimp)
}

// Equiv returns the equivalence of n1 and n2.
func (b *BDD) Equiv(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPbiimp)
}

// AndExist returns the relational product of n1 and n2 over varset, that is
// Exist(And(n1, n2), varset) computed without building the conjunction.
func (b *BDD) AndExist(varset, n1, n2 Node) Node {
	return b.AppEx(n1, n2, OPand, varset)
}
