// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avlindex/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return checkUp(tree.root, nil)
}

// internal: up pointer checker
func checkUp[K constraints.Ordered, V any](p *Node[K, V], up *Node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	return checkUp(p.left, p) && checkUp(p.right, p)
}

// Check - verify every structural invariant of the tree
//
// ordering, cached sizes and heights, balance factors, up pointers
// and that the allocator agrees with the size of the root
func (tree *Tree[K, V]) Check() error {
	if !tree.CheckUp() {
		return fault.ErrParentLinkBroken
	}
	if err := check(tree.root, nil, nil); nil != err {
		return err
	}
	if tree.alloc.live != sizeOf(tree.root) {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: keys of p must lie strictly between low and high when
// those are present
func check[K constraints.Ordered, V any](p *Node[K, V], low *K, high *K) error {
	if nil == p {
		return nil
	}
	if (nil != low && !(*low < p.key)) || (nil != high && !(p.key < *high)) {
		return fault.ErrOrderingViolated
	}
	if err := check(p.left, low, &p.key); nil != err {
		return err
	}
	if err := check(p.right, &p.key, high); nil != err {
		return err
	}

	lh := heightOf(p.left)
	rh := heightOf(p.right)
	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	switch {
	case p.height != h:
		return fault.ErrHeightMismatch
	case p.size != 1+sizeOf(p.left)+sizeOf(p.right):
		return fault.ErrSizeMismatch
	case p.balance != lh-rh, p.balance < -1, p.balance > 1:
		return fault.ErrBalanceViolated
	}
	return nil
}
