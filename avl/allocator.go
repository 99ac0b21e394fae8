// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avlindex/fault"
)

// per tree node accounting
//
// deleted nodes are never reused, a handle obtained from Search
// keeps its key and value for as long as the caller holds it
type allocator[K constraints.Ordered, V any] struct {
	maximum int // zero for no limit
	live    int // nodes currently linked into the tree
}

// allocate a new leaf node
func (a *allocator[K, V]) newNode(key K, value V) (*Node[K, V], error) {
	if 0 != a.maximum && a.live >= a.maximum {
		return nil, fault.ErrAllocationFailed
	}
	a.live += 1

	return &Node[K, V]{
		key:    key,
		value:  value,
		height: 1,
		size:   1,
	}, nil
}

// detach a deleted node, its key and value are left intact
func (a *allocator[K, V]) freeNode(p *Node[K, V]) {
	if a.live <= 0 {
		fault.Panicf("avl: free with no live nodes, key: %v", p.key)
	}
	p.left = nil
	p.right = nil
	p.up = nil
	a.live -= 1
}
