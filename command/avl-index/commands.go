// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlindex/avl"
	"github.com/bitmark-inc/avlindex/bench"
	"github.com/bitmark-inc/avlindex/fault"
	"github.com/bitmark-inc/avlindex/index"
)

type selectReply struct {
	Rank int    `json:"rank"`
	Key  string `json:"key"`
}

type searchReply struct {
	Key   string `json:"key"`
	Rank  int    `json:"rank"`
	Value string `json:"value,omitempty"`
}

type rankReply struct {
	Key  string `json:"key"`
	Rank int    `json:"rank"`
}

type sliceReply struct {
	Rank int      `json:"rank"`
	Keys []string `json:"keys"`
}

type statsReply struct {
	Count      int            `json:"count"`
	Height     int            `json:"height"`
	Bound      float64        `json:"bound"`
	Statistics avl.Statistics `json:"statistics"`
}

func selectKey(ix *index.Index[string, string], rank int) (*selectReply, error) {
	key, ok := ix.Select(rank)
	if !ok {
		return nil, fault.ErrRankOutOfRange
	}
	return &selectReply{Rank: rank, Key: key}, nil
}

func searchKey(ix *index.Index[string, string], key string) (*searchReply, error) {
	value, ok := ix.Search(key)
	if !ok {
		return nil, fault.ErrKeyNotFound
	}
	return &searchReply{Key: key, Rank: ix.Rank(key), Value: value}, nil
}

func rankKey(ix *index.Index[string, string], key string) *rankReply {
	return &rankReply{Key: key, Rank: ix.Rank(key)}
}

func sliceKeys(ix *index.Index[string, string], rank int, count int) (*sliceReply, error) {
	keys, err := ix.Slice(rank, count)
	if nil != err {
		return nil, err
	}
	return &sliceReply{Rank: rank, Keys: keys}, nil
}

func statsOf(ix *index.Index[string, string]) (*statsReply, error) {
	if err := ix.Check(); nil != err {
		return nil, err
	}
	n := ix.Count()
	return &statsReply{
		Count:      n,
		Height:     ix.Height(),
		Bound:      bench.HeightBound(n),
		Statistics: ix.Statistics(),
	}, nil
}

func runSelect(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	reply, err := selectKey(m.index, c.Int("rank"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runSearch(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	key, err := checkKey(c.String("key"))
	if nil != err {
		return err
	}
	reply, err := searchKey(m.index, key)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runRank(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	key, err := checkKey(c.String("key"))
	if nil != err {
		return err
	}
	return printJson(m.w, rankKey(m.index, key))
}

func runSlice(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	reply, err := sliceKeys(m.index, c.Int("rank"), c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runStats(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	reply, err := statsOf(m.index)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runDump(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	depth := m.index.Print(m.w, c.Bool("data"))
	if m.verbose {
		fmt.Fprintf(m.e, "depth: %d\n", depth)
	}
	return nil
}

func checkKey(key string) (string, error) {
	if "" == key {
		return "", fault.ErrMissingKey
	}
	return key, nil
}
