// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// Node - a node in the tree
//
// a node owns its left and right sub-trees, the up pointer is only
// used to walk towards the root and to relink during rotations
type Node[K constraints.Ordered, V any] struct {
	left    *Node[K, V] // left sub-tree
	right   *Node[K, V] // right sub-tree
	up      *Node[K, V] // points to parent node
	key     K           // key part for ordering
	value   V           // value part for data storage
	height  int         // 1 + max(child heights)
	size    int         // nodes in this sub-tree including this one
	balance int         // height(left) - height(right)
}

// height of a possibly absent sub-tree
func heightOf[K constraints.Ordered, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// number of nodes in a possibly absent sub-tree
func sizeOf[K constraints.Ordered, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return p.size
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Height - height of the sub-tree rooted at this node
func (p *Node[K, V]) Height() int {
	return p.height
}

// Size - number of nodes in the sub-tree rooted at this node
func (p *Node[K, V]) Size() int {
	return p.size
}

// Balance - the balance factor, always in the range -1 … +1
func (p *Node[K, V]) Balance() int {
	return p.balance
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Left - return the left child, nil if none
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return the right child, nil if none
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	if depth == 0 {
		return []*Node[K, V]{p}
	}
	nodes := []*Node[K, V]{}
	if nil != p.left {
		nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
	}
	if nil != p.right {
		nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
	}
	return nodes
}
