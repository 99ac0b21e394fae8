// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlindex/fault"
	"github.com/bitmark-inc/avlindex/index"
	"github.com/bitmark-inc/logger"
)

func TestNewRequiresLogger(t *testing.T) {
	_, err := index.New[string, int](nil, 0)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err)

	_, err = index.New[string, int](logger.New("test"), -1)
	assert.Equal(t, fault.ErrInvalidNodeLimit, err)
}

func TestOperations(t *testing.T) {
	ix, err := index.New[string, int](logger.New("test"), 0)
	require.NoError(t, err)

	for i, k := range []string{"delta", "alpha", "echo", "charlie", "bravo"} {
		added, err := ix.Insert(k, i)
		require.NoError(t, err)
		require.True(t, added)
	}

	added, err := ix.Insert("alpha", 99)
	require.NoError(t, err)
	assert.False(t, added, "duplicate")

	v, ok := ix.Search("alpha")
	assert.True(t, ok)
	assert.Equal(t, 1, v, "first value kept")

	_, ok = ix.Search("foxtrot")
	assert.False(t, ok)

	k, ok := ix.Select(3)
	assert.True(t, ok)
	assert.Equal(t, "charlie", k)

	_, ok = ix.Select(6)
	assert.False(t, ok, "past end")

	assert.Equal(t, 2, ix.Rank("bravo"))
	assert.Equal(t, 0, ix.Rank("zulu"))
	assert.Equal(t, 5, ix.Count())
	assert.Equal(t, 3, ix.Height())

	keys, err := ix.Slice(2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"bravo", "charlie"}, keys)

	keys, err = ix.Slice(4, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"delta", "echo"}, keys, "short slice")

	_, err = ix.Slice(6, 1)
	assert.Equal(t, fault.ErrRankOutOfRange, err)
	_, err = ix.Slice(1, 0)
	assert.Equal(t, fault.ErrInvalidCount, err)

	v, ok = ix.Delete("charlie")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, []string{"alpha", "bravo", "delta", "echo"}, ix.Keys())
	assert.NoError(t, ix.Check())

	s := ix.Statistics()
	assert.Equal(t, uint64(5), s.Inserts)
	assert.Equal(t, uint64(1), s.Duplicates)
	assert.Equal(t, uint64(1), s.Deletes)
}

func TestLimit(t *testing.T) {
	ix, err := index.New[int, int](logger.New("test"), 2)
	require.NoError(t, err)

	_, err = ix.Insert(1, 1)
	require.NoError(t, err)
	_, err = ix.Insert(2, 2)
	require.NoError(t, err)

	added, err := ix.Insert(3, 3)
	assert.False(t, added)
	assert.True(t, fault.IsErrAllocation(err))
	assert.Equal(t, 2, ix.Count())
}

// one writer and several readers
func TestConcurrentAccess(t *testing.T) {
	ix, err := index.New[int, int](logger.New("test"), 0)
	require.NoError(t, err)

	const total = 5000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= total; i += 1 {
			if _, err := ix.Insert(i, i); nil != err {
				t.Errorf("insert: %d  error: %s", i, err)
				return
			}
		}
	}()

	for r := 0; r < 4; r += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < total; i += 1 {
				n := ix.Count()
				if 0 == n {
					continue
				}
				k, ok := ix.Select(n)
				if !ok || k < n {
					t.Errorf("select: %d returned: %d %v", n, k, ok)
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, total, ix.Count())
	assert.NoError(t, ix.Check())
}

// callers must go through the index methods, the lock is private
func TestLockNotExported(t *testing.T) {
	ix, err := index.New[int, int](logger.New("test"), 0)
	require.NoError(t, err)

	for _, name := range []string{"Lock", "Unlock", "RLock", "RUnlock"} {
		_, found := reflect.TypeOf(ix).MethodByName(name)
		assert.False(t, found, name)
	}
}
