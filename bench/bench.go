// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
)

//go:generate mockgen -destination=mocks/tree.go -package=mocks github.com/bitmark-inc/avlindex/bench Tree

// Tree - the only operations needed to benchmark a tree
type Tree interface {
	Insert(key int, value int) (bool, error)
	Count() int
	Height() int
}

// Result - outcome of a run
type Result struct {
	Keys        int           `json:"keys"`
	Count       int           `json:"count"`
	Height      int           `json:"height"`
	Ratio       float64       `json:"ratio"`
	Bound       float64       `json:"bound"`
	WithinBound bool          `json:"within_bound"`
	Total       time.Duration `json:"total"`
	PerInsert   time.Duration `json:"per_insert"`
}

// default spacing of progress messages
const progressInterval = 5 * time.Second

// Runner - inserts keys and measures
type Runner struct {
	log      *logger.L
	progress *rate.Limiter
	now      func() time.Time
}

// New - create a runner logging to the given channel
func New(log *logger.L) *Runner {
	return &Runner{
		log:      log,
		progress: rate.NewLimiter(rate.Every(progressInterval), 1),
		now:      time.Now,
	}
}

// HeightBound - the maximum height of an AVL tree of n nodes
func HeightBound(n int) float64 {
	return 1.44*math.Log2(float64(n+2)) - 0.328
}

// Run - insert all keys, the key is also used as the value
//
// stops at the first insert error
func (r *Runner) Run(tree Tree, keys []int) (*Result, error) {

	start := r.now()
	for i, k := range keys {
		if _, err := tree.Insert(k, k); nil != err {
			r.log.Errorf("insert: %d of %d  key: %d  error: %s", i+1, len(keys), k, err)
			return nil, err
		}
		if r.progress.Allow() {
			r.log.Infof("inserted: %d of %d", i+1, len(keys))
		}
	}
	total := r.now().Sub(start)

	n := tree.Count()
	h := tree.Height()

	result := &Result{
		Keys:   len(keys),
		Count:  n,
		Height: h,
		Bound:  HeightBound(n),
		Total:  total,
	}
	result.WithinBound = float64(h) <= result.Bound
	if n > 1 {
		result.Ratio = float64(h) / math.Log2(float64(n))
	}
	if n > 0 {
		result.PerInsert = total / time.Duration(n)
	}

	r.log.Infof("n: %d  h: %d  h/log n: %.4f  bound: %.2f  total: %s", n, h, result.Ratio, result.Bound, total)
	if !result.WithinBound {
		r.log.Warnf("height: %d exceeds bound: %.2f", h, result.Bound)
	}
	return result, nil
}

// String - the report line printed at the end of a run
func (result *Result) String() string {
	return fmt.Sprintf("n = %d h = %d h/log n = %g\nTotal Time = %.3f msec Avg time per ins %.6f msec",
		result.Count,
		result.Height,
		result.Ratio,
		float64(result.Total)/float64(time.Millisecond),
		float64(result.PerInsert)/float64(time.Millisecond),
	)
}
