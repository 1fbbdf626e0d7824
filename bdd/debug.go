// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug

package bdd

import (
	"log"
	"os"
)

const _DEBUG bool = true
const _LOGLEVEL int = 1

func init() {
	log.SetOutput(os.Stdout)
}

func (b *BDD) logTable() {
	if b.error != nil {
		log.Printf("ERROR: %s\n", b.error)
	}
	for k, n := range b.nodes {
		switch {
		case n.low == -1:
			continue
		case n.refcou == _MAXREFCOUNT:
			log.Printf("%-3d ( %-3d ,  %-3d ,  %-3d) | +\n", k, n.level, n.low, n.high)
		case n.refcou == 0:
			log.Printf("%-3d ( %-3d ,  %-3d ,  %-3d) |\n", k, n.level, n.low, n.high)
		default:
			log.Printf("%-3d ( %-3d ,  %-3d ,  %-3d) | %d\n", k, n.level, n.low, n.high, n.refcou)
		}
	}
}
