// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"io"
	"sync"

	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/fault"
	"github.com/bitmark-inc/logger"
)

// Index - an order statistic index
type Index[K constraints.Ordered, V any] struct {
	lock sync.RWMutex
	log  *logger.L
	tree *avl.Tree[K, V]
}

// New - create an empty index, maximumNodes of zero means no limit
func New[K constraints.Ordered, V any](log *logger.L, maximumNodes int) (*Index[K, V], error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if maximumNodes < 0 {
		return nil, fault.ErrInvalidNodeLimit
	}

	tree := avl.New[K, V]()
	if maximumNodes > 0 {
		t, err := avl.NewWithLimit[K, V](maximumNodes)
		if nil != err {
			return nil, err
		}
		tree = t
	}

	log.Debugf("new index, node limit: %d", maximumNodes)

	return &Index[K, V]{
		log:  log,
		tree: tree,
	}, nil
}

// Insert - add a key, an existing key is left unchanged
func (ix *Index[K, V]) Insert(key K, value V) (bool, error) {
	ix.lock.Lock()
	defer ix.lock.Unlock()

	added, err := ix.tree.Insert(key, value)
	if nil != err {
		ix.log.Warnf("insert key: %v  count: %d  error: %s", key, ix.tree.Count(), err)
		return false, err
	}
	if !added {
		ix.log.Tracef("duplicate key: %v", key)
	}
	return added, nil
}

// Delete - remove a key, returning its value
func (ix *Index[K, V]) Delete(key K) (V, bool) {
	ix.lock.Lock()
	defer ix.lock.Unlock()

	value, ok := ix.tree.Delete(key)
	if ok {
		ix.log.Tracef("deleted key: %v", key)
	}
	return value, ok
}

// Search - fetch the value stored for a key
func (ix *Index[K, V]) Search(key K) (V, bool) {
	ix.lock.RLock()
	defer ix.lock.RUnlock()

	node := ix.tree.Search(key)
	if nil == node {
		var zero V
		return zero, false
	}
	return node.Value(), true
}

// Select - the key with the given one based rank
func (ix *Index[K, V]) Select(rank int) (K, bool) {
	ix.lock.RLock()
	defer ix.lock.RUnlock()

	node := ix.tree.Select(rank)
	if nil == node {
		var zero K
		return zero, false
	}
	return node.Key(), true
}

// Rank - one based position of a key, zero if absent
func (ix *Index[K, V]) Rank(key K) int {
	ix.lock.RLock()
	defer ix.lock.RUnlock()

	return ix.tree.Rank(key)
}

// Slice - up to count keys in order starting at the given rank
func (ix *Index[K, V]) Slice(rank int, count int) ([]K, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	ix.lock.RLock()
	defer ix.lock.RUnlock()

	node := ix.tree.Select(rank)
	if nil == node {
		return nil, fault.ErrRankOutOfRange
	}

	keys := make([]K, 0, count)
	for ; nil != node && len(keys) < count; node = node.Next() {
		keys = append(keys, node.Key())
	}
	return keys, nil
}

// Keys - all keys in ascending order
func (ix *Index[K, V]) Keys() []K {
	ix.lock.RLock()
	defer ix.lock.RUnlock()

	return ix.tree.Keys()
}

// Count - number of keys
func (ix *Index[K, V]) Count() int {
	ix.lock.RLock()
	defer ix.lock.RUnlock()

	return ix.tree.Count()
}

// Height - height of the underlying tree
func (ix *Index[K, V]) Height() int {
	ix.lock.RLock()
	defer ix.lock.RUnlock()

	return ix.tree.Height()
}

// Statistics - tree event counters, does not need the lock
func (ix *Index[K, V]) Statistics() avl.Statistics {
	return ix.tree.Statistics()
}

// Check - verify the tree invariants
func (ix *Index[K, V]) Check() error {
	ix.lock.RLock()
	defer ix.lock.RUnlock()

	err := ix.tree.Check()
	if nil != err {
		fault.Criticalf("index check failed: %s", err)
	}
	return err
}

// Print - ASCII drawing of the tree, returns its depth
func (ix *Index[K, V]) Print(w io.Writer, printData bool) int {
	ix.lock.RLock()
	defer ix.lock.RUnlock()

	return ix.tree.Print(w, printData)
}
