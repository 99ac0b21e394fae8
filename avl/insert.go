// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlindex/fault"
)

// Insert - insert a new key and value into the tree
//
// returns true if a node was added, false if the key was already
// present (the existing value is kept).  An error is only returned if
// a node could not be allocated, in which case the tree is unchanged.
func (tree *Tree[K, V]) Insert(key K, value V) (bool, error) {

	var parent *Node[K, V]
	p := tree.root

	// find the empty slot
search:
	for nil != p {
		switch {
		case key < p.key:
			parent = p
			p = p.left
		case key > p.key:
			parent = p
			p = p.right
		default:
			break search
		}
	}
	if nil != p {
		tree.stats.duplicates.Increment()
		return false, nil
	}

	n, err := tree.alloc.newNode(key, value)
	if nil != err {
		return false, err
	}

	n.up = parent
	if nil == parent {
		tree.root = n
	} else if key < parent.key {
		parent.left = n
	} else {
		parent.right = n
	}

	tree.fixInsert(parent)
	tree.stats.inserts.Increment()
	return true, nil
}

// walk from the parent of a new leaf to the root recomputing each
// node before its parent
//
// a single (possibly double) rotation restores the height the
// sub-tree had before the insert, so no higher node can then be out
// of balance
func (tree *Tree[K, V]) fixInsert(p *Node[K, V]) {
	rotated := false
	for ; nil != p; p = p.up {
		recalc(p)
		r := tree.rebalance(p)
		if noRotation == r {
			continue
		}
		if rotated {
			fault.Panicf("avl: %s at key: %v", fault.ErrTooManyRotations, p.key)
		}
		rotated = true
		tree.countRotation(r)
	}
}
