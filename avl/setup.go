// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avlindex/counter"
	"github.com/bitmark-inc/avlindex/fault"
)

// Tree - type to hold the root node of a tree
type Tree[K constraints.Ordered, V any] struct {
	root  *Node[K, V]
	alloc allocator[K, V]
	stats statistics
}

// internal counters, may be read while the tree is being modified
type statistics struct {
	inserts         counter.Counter
	duplicates      counter.Counter
	deletes         counter.Counter
	singleRotations counter.Counter
	doubleRotations counter.Counter
}

// Statistics - snapshot of the tree's event counters
type Statistics struct {
	Inserts         uint64 `json:"inserts"`
	Duplicates      uint64 `json:"duplicates"`
	Deletes         uint64 `json:"deletes"`
	SingleRotations uint64 `json:"single_rotations"`
	DoubleRotations uint64 `json:"double_rotations"`
}

// New - create an initially empty tree
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// NewWithLimit - create an empty tree that will hold at most
// maximumNodes nodes, further inserts fail with an allocation error
func NewWithLimit[K constraints.Ordered, V any](maximumNodes int) (*Tree[K, V], error) {
	if maximumNodes <= 0 {
		return nil, fault.ErrInvalidNodeLimit
	}
	tree := New[K, V]()
	tree.alloc.maximum = maximumNodes
	return tree, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return sizeOf(tree.root)
}

// Height - height of the whole tree, zero if empty
func (tree *Tree[K, V]) Height() int {
	return heightOf(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Statistics - read the current event counters
func (tree *Tree[K, V]) Statistics() Statistics {
	return Statistics{
		Inserts:         tree.stats.inserts.Uint64(),
		Duplicates:      tree.stats.duplicates.Uint64(),
		Deletes:         tree.stats.deletes.Uint64(),
		SingleRotations: tree.stats.singleRotations.Uint64(),
		DoubleRotations: tree.stats.doubleRotations.Uint64(),
	}
}
