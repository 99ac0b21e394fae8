// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns the value that was stored and true, or false if the key
// was not in the tree
func (tree *Tree[K, V]) Delete(key K) (V, bool) {
	x := tree.Search(key)
	if nil == x {
		var zero V
		return zero, false
	}

	// lowest node whose children changed
	var start *Node[K, V]

	switch {
	case nil == x.left:
		start = x.up
		tree.transplant(x, x.right)

	case nil == x.right:
		start = x.up
		tree.transplant(x, x.left)

	default:
		y := x.right.first() // successor
		if y.up == x {
			start = y
		} else {
			start = y.up
			tree.transplant(y, y.right)
			y.right = x.right
			y.right.up = y
		}
		tree.transplant(x, y)
		y.left = x.left
		y.left.up = y
	}

	tree.fixDelete(start)

	value := x.value
	tree.alloc.freeNode(x)
	tree.stats.deletes.Increment()
	return value, true
}

// walk from the point of change to the root, unlike insert a delete
// may need a rotation at every level
func (tree *Tree[K, V]) fixDelete(p *Node[K, V]) {
	for ; nil != p; p = p.up {
		recalc(p)
		tree.countRotation(tree.rebalance(p))
	}
}
