// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/bitmark-inc/avlindex/fault"
	"github.com/bitmark-inc/avlindex/index"
	"github.com/bitmark-inc/avlindex/keysource"
	"github.com/bitmark-inc/avlindex/util"
	"github.com/bitmark-inc/logger"
)

// where the keys come from, exactly one of database or file
type keySource struct {
	database string
	prefix   string
	file     string
	limit    int
}

// build an index from the key source
//
// database values are stored hex encoded, file keys have no value
func (s keySource) load(log *logger.L) (*index.Index[string, string], error) {

	ix, err := index.New[string, string](log, s.limit)
	if nil != err {
		return nil, err
	}

	var insertErr error
	insert := func(key string, value string) bool {
		_, insertErr = ix.Insert(key, value)
		return nil == insertErr
	}

	var n int
	switch {
	case "" != s.database && "" != s.file:
		return nil, fault.ErrMultipleKeySources

	case "" != s.database:
		if !util.EnsureFileExists(s.database) {
			return nil, fault.ErrMissingKeySource
		}
		n, err = keysource.LevelDB(s.database, []byte(s.prefix), func(key string, value []byte) bool {
			return insert(key, hex.EncodeToString(value))
		})

	case "-" == s.file:
		n, err = loadLines(os.Stdin, insert)

	case "" != s.file:
		var fh *os.File
		fh, err = os.Open(s.file)
		if nil != err {
			return nil, err
		}
		defer fh.Close()
		n, err = loadLines(fh, insert)

	default:
		return nil, fault.ErrMissingKeySource
	}

	if nil != err {
		return nil, err
	}
	if nil != insertErr {
		return nil, insertErr
	}

	log.Infof("read: %d keys  indexed: %d  height: %d", n, ix.Count(), ix.Height())

	return ix, nil
}

func loadLines(rd io.Reader, insert func(string, string) bool) (int, error) {
	return keysource.Lines(rd, func(key string) bool {
		return insert(key, "")
	})
}
