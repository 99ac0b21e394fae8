// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree augmented with subtree sizes and
// parent pointers to allow order statistic selection and iteration
// through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use the index package which wraps
//       a tree with a read/write mutex.
//
// Every node caches its height, the number of nodes in its sub-tree
// and its balance factor.  These are only ever recomputed from the
// cached values of the two children, absent children counting as
// zero.  Insertion links a new leaf and then walks the parent
// pointers back up to the root, recomputing each ancestor and
// rotating the first one found out of balance.
//
// Keys are unique: inserting a key that is already present leaves
// the tree and the stored value unchanged.
package avl
