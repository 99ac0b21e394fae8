// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bench - time a run of inserts into a balanced tree and
// report how its height compares with the AVL bound
package bench
