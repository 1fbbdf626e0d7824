// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "math/big"

// primeGte returns the smallest odd prime greater or equal to src. Cache
// tables are sized with primes so that the hash functions spread entries.
func primeGte(src int) int {
	if src <= 3 {
		return 3
	}
	src |= 1
	for !big.NewInt(int64(src)).ProbablyPrime(0) {
		src += 2
	}
	return src
}
