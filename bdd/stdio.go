// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"unsafe"
)

// Stats returns information about the BDD: size of the node table, number of
// nodes produced, free and used slots, and garbage collections.
func (b *BDD) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", b.varnum)
	res += fmt.Sprintf("Allocated:  %d  (%s)\n", len(b.nodes), humanSize(len(b.nodes), unsafe.Sizeof(vertex{})))
	res += fmt.Sprintf("Produced:   %d\n", b.produced)
	r := (float64(b.freenum) / float64(len(b.nodes))) * 100
	res += fmt.Sprintf("Free:       %d  (%.3g %%)\n", b.freenum, r)
	res += fmt.Sprintf("Used:       %d  (%.3g %%)\n", len(b.nodes)-b.freenum, (100.0 - r))
	res += "==============\n"
	res += fmt.Sprintf("# of GC:    %d\n", len(b.gcstat.history))
	allocated := int(b.gcstat.setfinalizers)
	reclaimed := 0
	for _, g := range b.gcstat.history {
		allocated += g.setfinalizers
		reclaimed += g.calledfinalizers
	}
	res += fmt.Sprintf("Ext. refs:  %d\n", allocated)
	res += fmt.Sprintf("Reclaimed:  %d", reclaimed)
	if _DEBUG {
		res += "\n==============\n"
		res += b.cacheStat.String()
	}
	return res
}

// Produced returns the total number of nodes ever created in the table.
func (b *BDD) Produced() int {
	return b.produced
}

// Allocated returns the current number of slots in the node table.
func (b *BDD) Allocated() int {
	return len(b.nodes)
}

// humanSize returns a human readable version of a size in bytes
func humanSize(b int, unit uintptr) string {
	b = b * int(unit)
	const k = 1024
	if b < k {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(k), 0
	for n := b / k; n >= k; n /= k {
		div *= k
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// Print returns a one-line description of node n.
func (b *BDD) Print(n Node) string {
	if n == nil {
		return "Error (nil node)"
	}
	switch {
	case *n == 0:
		return "False"
	case *n == 1:
		return "True"
	case *n < 0:
		return "Error"
	case *n >= len(b.nodes):
		return fmt.Sprintf("Error (%d not a valid index)", *n)
	case b.nodes[*n].low == -1:
		return fmt.Sprintf("Error (node %d undefined)", *n)
	}
	return fmt.Sprintf("(%d[%d] ? %d : %d)", *n, b.nodes[*n].level, b.nodes[*n].low, b.nodes[*n].high)
}

// PrintSet writes a textual representation of the BDD with root n, one line
// per internal node.
func (b *BDD) PrintSet(w io.Writer, n Node) error {
	nodes, err := b.reachable(n)
	if err != nil {
		fmt.Fprintf(w, "ERROR: %s\n", err)
		return err
	}
	switch *n {
	case 0:
		fmt.Fprintln(w, "False")
		return nil
	case 1:
		fmt.Fprintln(w, "True")
		return nil
	}
	fmt.Fprintf(w, "node: %d\n", *n)
	tw := tabwriter.NewWriter(w, 0, 0, 0, ' ', 0)
	for _, v := range nodes {
		if v > 1 {
			fmt.Fprintf(tw, "%d\t[%d\t] ? \t%d\t : %d\n", v, b.nodes[v].level, b.nodes[v].low, b.nodes[v].high)
		}
	}
	return tw.Flush()
}

// PrintDot writes a graph-like description of the BDD with root n using the
// DOT format. We do not draw arcs that go to the constant false.
func (b *BDD) PrintDot(w io.Writer, n Node) error {
	nodes, err := b.reachable(n)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "1 [shape=box, label=\"1\", style=filled, shape=box, height=0.3, width=0.3];")
	for _, v := range nodes {
		if v > 1 {
			fmt.Fprintf(bw, "%d %s\n", v, dotlabel(v, b.nodes[v].level))
			if b.nodes[v].low != 0 {
				fmt.Fprintf(bw, "%d -> %d [style=dotted];\n", v, b.nodes[v].low)
			}
			if b.nodes[v].high != 0 {
				fmt.Fprintf(bw, "%d -> %d [style=filled];\n", v, b.nodes[v].high)
			}
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// reachable returns the sorted list of nodes reachable from n, constants
// included.
func (b *BDD) reachable(n Node) ([]int, error) {
	if b.error != nil {
		return nil, b.error
	}
	if err := b.checkptr(n); err != nil {
		return nil, err
	}
	cnodes := b.markcount(*n)
	nodes := make([]int, 2, cnodes+2)
	nodes[0] = 0
	nodes[1] = 1
	for i := 2; i < len(b.nodes); i++ {
		if b.ismarked(i) {
			b.unmarknode(i)
			nodes = append(nodes, i)
		}
	}
	sort.Ints(nodes)
	return nodes, nil
}

func dotlabel(a int, b int32) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, b, a)
}
