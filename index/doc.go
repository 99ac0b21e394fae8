// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package index - an ordered index safe for use from several
// goroutines
//
// A single writer at a time modifies the underlying AVL tree while
// any number of readers may search, rank and select.
package index
