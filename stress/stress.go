// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stress - randomised insert/remove workload with invariant checks
package stress

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Options - shape of the workload
type Options struct {
	Operations    int   // total insert + remove calls
	KeyRange      int   // keys are drawn from 0 .. KeyRange-1
	InsertPercent int   // chance of an operation being an insert
	CheckEvery    int   // full tree check interval, 0 = only at end
	Seed          int64 // random source
}

// Result - what happened
type Result struct {
	Inserted    int
	Overwritten int
	Removed     int
	Missed      int // removes of absent keys
	Count       int
	Height      int
	Bound       int
	Rotations   avl.Stats
	Elapsed     time.Duration
}

// String - one line summary
func (r Result) String() string {
	return fmt.Sprintf("inserted: %d  overwritten: %d  removed: %d  missed: %d  count: %d  height: %d  bound: %d  single: %d  double: %d  elapsed: %s",
		r.Inserted, r.Overwritten, r.Removed, r.Missed,
		r.Count, r.Height, r.Bound,
		r.Rotations.Single, r.Rotations.Double,
		r.Elapsed,
	)
}

// Key - format a numeric key so that lexical and numeric order agree
func Key(n int) string {
	return fmt.Sprintf("%010d", n)
}

// Run - apply the workload to a tree
func Run(tree *avl.Tree[string, string], options Options, log *logger.L) (Result, error) {
	if options.Operations < 0 || options.KeyRange <= 0 {
		return Result{}, fault.ErrInvalidCount
	}
	if options.InsertPercent < 0 || options.InsertPercent > 100 {
		return Result{}, fault.ErrInvalidCount
	}

	log.Infof("options: %+v", options)

	r := rand.New(rand.NewSource(options.Seed))
	result := Result{}
	start := time.Now()

	for i := 1; i <= options.Operations; i += 1 {
		key := Key(r.Intn(options.KeyRange))
		if r.Intn(100) < options.InsertPercent {
			if tree.Insert(key, fmt.Sprintf("op:%d", i)) {
				result.Inserted += 1
			} else {
				result.Overwritten += 1
			}
		} else {
			if tree.Remove(key) {
				result.Removed += 1
			} else {
				result.Missed += 1
			}
		}

		if options.CheckEvery > 0 && 0 == i%options.CheckEvery {
			if err := check(tree); nil != err {
				log.Errorf("operation: %d  key: %q  error: %s", i, key, err)
				return result, err
			}
		}
	}

	result.Elapsed = time.Since(start)
	if err := check(tree); nil != err {
		log.Errorf("final check error: %s", err)
		return result, err
	}

	result.Count = tree.Count()
	result.Height = tree.Height()
	result.Bound = avl.HeightBound(result.Count)
	result.Rotations = tree.Rotations()

	log.Infof("result: %s", result)
	return result, nil
}

func check(tree *avl.Tree[string, string]) error {
	if err := tree.Check(); nil != err {
		return err
	}
	if tree.Height() > avl.HeightBound(tree.Count()) {
		return fault.ErrUnbalancedTree
	}
	return nil
}
