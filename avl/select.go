// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Select - the node holding the rank-th smallest key, rank is one
// based; nil if rank is outside 1 … Count()
func (tree *Tree[K, V]) Select(rank int) *Node[K, V] {
	return selectNode(tree.root, rank)
}

// Select - the i-th smallest node of the sub-tree rooted here
func (p *Node[K, V]) Select(i int) *Node[K, V] {
	return selectNode(p, i)
}

func selectNode[K constraints.Ordered, V any](x *Node[K, V], i int) *Node[K, V] {
	if i < 1 || i > sizeOf(x) {
		return nil
	}
	for nil != x {
		r := sizeOf(x.left)
		switch {
		case i == r+1:
			return x
		case i <= r:
			x = x.left
		default:
			// skip left nodes + 1 (for this node)
			i -= r + 1
			x = x.right
		}
	}
	return nil
}
