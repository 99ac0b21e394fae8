// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[K, V]) Next() *Node[K, V] {
	if nil != p.right {
		return p.right.first()
	}
	for nil != p.up && p == p.up.right {
		p = p.up
	}
	return p.up
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node[K, V]) Prev() *Node[K, V] {
	if nil != p.left {
		return p.left.last()
	}
	for nil != p.up && p == p.up.left {
		p = p.up
	}
	return p.up
}

// Walk - visit every node in ascending key order until f returns false
func (tree *Tree[K, V]) Walk(f func(*Node[K, V]) bool) {
	for p := tree.First(); nil != p; p = p.Next() {
		if !f(p) {
			return
		}
	}
}

// Keys - all keys in ascending order
func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.Count())
	tree.Walk(func(p *Node[K, V]) bool {
		keys = append(keys, p.key)
		return true
	})
	return keys
}
