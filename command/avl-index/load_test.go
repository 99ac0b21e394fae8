// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/avlindex/fault"
	"github.com/bitmark-inc/logger"
)

func makeDatabase(t *testing.T) string {
	dir, err := ioutil.TempDir("", "avl-index-db")
	require.NoError(t, err)

	db, err := leveldb.OpenFile(dir, nil)
	require.NoError(t, err)

	items := map[string][]byte{
		"Kpear":   {0x01},
		"Kapple":  {0x02, 0x03},
		"Kmango":  {0xff},
		"Kbanana": {},
		"Zother":  {0x00},
	}
	for k, v := range items {
		require.NoError(t, db.Put([]byte(k), v, nil))
	}
	require.NoError(t, db.Close())
	return dir
}

func makeFile(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "avl-index-file")
	require.NoError(t, err)
	fileName := filepath.Join(dir, "keys.txt")
	require.NoError(t, ioutil.WriteFile(fileName, []byte(text), 0600))
	return dir, fileName
}

func TestLoadDatabase(t *testing.T) {
	dir := makeDatabase(t)
	defer os.RemoveAll(dir)

	s := keySource{database: dir, prefix: "K"}
	ix, err := s.load(logger.New("test"))
	require.NoError(t, err)

	assert.Equal(t, []string{"apple", "banana", "mango", "pear"}, ix.Keys())

	value, ok := ix.Search("apple")
	assert.True(t, ok)
	assert.Equal(t, "0203", value)
	require.NoError(t, ix.Check())
}

func TestLoadDatabaseNoPrefix(t *testing.T) {
	dir := makeDatabase(t)
	defer os.RemoveAll(dir)

	s := keySource{database: dir}
	ix, err := s.load(logger.New("test"))
	require.NoError(t, err)
	assert.Equal(t, 5, ix.Count())
	assert.Equal(t, "Zother", ix.Keys()[4])
}

func TestLoadFile(t *testing.T) {
	dir, fileName := makeFile(t, "delta\n\nalpha\n  charlie  \nalpha\nbravo\n")
	defer os.RemoveAll(dir)

	s := keySource{file: fileName}
	ix, err := s.load(logger.New("test"))
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, ix.Keys())
	assert.Equal(t, uint64(1), ix.Statistics().Duplicates)
}

func TestLoadLimit(t *testing.T) {
	dir, fileName := makeFile(t, "a\nb\nc\nd\n")
	defer os.RemoveAll(dir)

	s := keySource{file: fileName, limit: 3}
	_, err := s.load(logger.New("test"))
	assert.Equal(t, fault.ErrAllocationFailed, err)
}

func TestLoadErrors(t *testing.T) {
	log := logger.New("test")

	_, err := keySource{}.load(log)
	assert.Equal(t, fault.ErrMissingKeySource, err)

	_, err = keySource{database: "x", file: "y"}.load(log)
	assert.Equal(t, fault.ErrMultipleKeySources, err)

	_, err = keySource{database: "/no/such/database"}.load(log)
	assert.Equal(t, fault.ErrMissingKeySource, err)

	_, err = keySource{file: "/no/such/file.txt"}.load(log)
	assert.Error(t, err)

	_, err = keySource{file: "k", limit: -1}.load(log)
	assert.Equal(t, fault.ErrInvalidNodeLimit, err)
}
