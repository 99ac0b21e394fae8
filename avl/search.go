// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item, nil if not found
func (tree *Tree[K, V]) Search(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Rank - one based position of key in ascending order, zero if the
// key is not in the tree
func (tree *Tree[K, V]) Rank(key K) int {
	rank := 0
	p := tree.root
	for nil != p {
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			rank += sizeOf(p.left) + 1
			p = p.right
		default:
			return rank + sizeOf(p.left) + 1
		}
	}
	return 0
}
