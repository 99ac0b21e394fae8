// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keysource

import (
	"bufio"
	"io"
	"strings"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avlindex/fault"
)

// LevelDB - call f with every key (and value) of a database that
// starts with prefix, the prefix is removed from the key
//
// the database is opened read only and iteration stops early if f
// returns false
func LevelDB(directory string, prefix []byte, f func(key string, value []byte) bool) (int, error) {
	if "" == directory {
		return 0, fault.ErrMissingKeySource
	}

	db, err := leveldb.OpenFile(directory, &ldb_opt.Options{
		ReadOnly:       true,
		ErrorIfMissing: true,
	})
	if nil != err {
		return 0, err
	}
	defer db.Close()

	var r *ldb_util.Range
	if len(prefix) > 0 {
		r = ldb_util.BytesPrefix(prefix)
	}

	n := 0
	iter := db.NewIterator(r, nil)
	for iter.Next() {
		key := iter.Key()[len(prefix):]

		// iterator buffers are reused, so copy the value
		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())

		n += 1
		if !f(string(key), value) {
			break
		}
	}
	iter.Release()
	return n, iter.Error()
}

// Lines - call f with every non-blank line of a reader, surrounding
// white space is removed
func Lines(rd io.Reader, f func(key string) bool) (int, error) {
	n := 0
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		key := strings.TrimSpace(scanner.Text())
		if "" == key {
			continue
		}
		n += 1
		if !f(key) {
			break
		}
	}
	return n, scanner.Err()
}
