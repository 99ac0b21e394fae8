// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// which kind of restructuring a rebalance performed
type rotation int

const (
	noRotation     rotation = iota
	singleRotation rotation = iota
	doubleRotation rotation = iota
)

// recompute height, size and balance of a node from its children
//
// the children must already be correct
func recalc[K constraints.Ordered, V any](x *Node[K, V]) {
	lh := heightOf(x.left)
	rh := heightOf(x.right)
	if lh > rh {
		x.height = 1 + lh
	} else {
		x.height = 1 + rh
	}
	x.size = 1 + sizeOf(x.left) + sizeOf(x.right)
	x.balance = lh - rh
}

// the strictly taller child, the right child on a tie
func tallerChild[K constraints.Ordered, V any](x *Node[K, V]) *Node[K, V] {
	if heightOf(x.left) > heightOf(x.right) {
		return x.left
	}
	return x.right
}

// put y in place of x in the tree
//
// x along with its sub-tree is detached from its parent, y may be nil
// and neither node's children are altered
func (tree *Tree[K, V]) transplant(x *Node[K, V], y *Node[K, V]) {
	if nil == x.up {
		tree.root = y
	} else if x == x.up.left {
		x.up.left = y
	} else {
		x.up.right = y
	}
	if nil != y {
		y.up = x.up
	}
}

// right rotation at x, x.left must not be nil
func (tree *Tree[K, V]) rotateRight(x *Node[K, V]) {
	y := x.left
	tree.transplant(y, y.right) // y.right becomes x.left
	tree.transplant(x, y)       // y takes the place of x
	y.right = x
	x.up = y
	recalc(x)
	recalc(y)
}

// left rotation at x, x.right must not be nil
func (tree *Tree[K, V]) rotateLeft(x *Node[K, V]) {
	y := x.right
	tree.transplant(y, y.left) // y.left becomes x.right
	tree.transplant(x, y)      // y takes the place of x
	y.left = x
	x.up = y
	recalc(x)
	recalc(y)
}

// restore the balance of x if its balance factor is out of range
//
// x must have been recalculated
func (tree *Tree[K, V]) rebalance(x *Node[K, V]) rotation {
	if x.balance >= -1 && x.balance <= 1 {
		return noRotation
	}

	y := tallerChild(x)
	z := tallerChild(y)

	// equal grandchildren only occur after a delete and then only
	// the single rotation leaves both halves balanced
	if heightOf(y.left) == heightOf(y.right) {
		if y == x.left {
			z = y.left
		} else {
			z = y.right
		}
	}

	if y == x.left {
		if z == y.left { // LL
			tree.rotateRight(x)
			return singleRotation
		}
		tree.rotateLeft(y) // LR
		tree.rotateRight(x)
		return doubleRotation
	}
	if z == y.left { // RL
		tree.rotateRight(y)
		tree.rotateLeft(x)
		return doubleRotation
	}
	tree.rotateLeft(x) // RR
	return singleRotation
}

// account for a rotation
func (tree *Tree[K, V]) countRotation(r rotation) {
	switch r {
	case singleRotation:
		tree.stats.singleRotations.Increment()
	case doubleRotation:
		tree.stats.doubleRotations.Increment()
	}
}
