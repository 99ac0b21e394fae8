// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keysource

import (
	"math/rand"
	"strings"

	"github.com/bitmark-inc/avlindex/fault"
)

// Order - how generated keys are arranged
type Order string

// the supported orders
const (
	OrderSequential Order = "sequential"
	OrderPermuted   Order = "permuted"
	OrderRandom     Order = "random"
)

// multiplier and offset of the permuted order
const (
	permuteMultiplier = 7637
	permuteOffset     = 571
)

// ParseOrder - convert a name to an order, case is ignored
func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ToLower(strings.TrimSpace(s))); o {
	case OrderSequential, OrderPermuted, OrderRandom:
		return o, nil
	case "":
		return OrderSequential, nil
	default:
		return "", fault.ErrUnknownKeyOrder
	}
}

// Generate - n keys in the given order
func Generate(order Order, n int, seed int64) ([]int, error) {
	if n < 0 {
		return nil, fault.ErrInvalidCount
	}
	switch order {
	case OrderSequential:
		return Sequential(n), nil
	case OrderPermuted:
		return Permuted(n), nil
	case OrderRandom:
		return Random(n, seed), nil
	default:
		return nil, fault.ErrUnknownKeyOrder
	}
}

// Sequential - the keys 1 … n
func Sequential(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i + 1
	}
	return keys
}

// Permuted - keys in 1 … n scattered by a fixed linear map
//
// the result is a permutation only when n is coprime to the
// multiplier, otherwise some keys repeat
func Permuted(n int) []int {
	keys := make([]int, n)
	for i := 1; i <= n; i += 1 {
		keys[i-1] = (i*permuteMultiplier+permuteOffset)%n + 1
	}
	return keys
}

// Random - n pseudo random keys in 1 … n, repeats are likely
func Random(n int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.Intn(n) + 1
	}
	return keys
}
