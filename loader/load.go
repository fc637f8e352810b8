// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package loader

import (
	"bytes"
	"iter"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Load - insert every pair from source into the tree
// returns the number of pairs read
//
// the source must deliver strictly ascending keys; the source is
// released on return
func Load(tree *avl.Tree[string, string], source Source, log *logger.L) (int, error) {
	defer source.Release()

	n := 0
	var previous []byte
	for source.Next() {
		key := source.Key()
		if n > 0 && bytes.Compare(previous, key) >= 0 {
			log.Errorf("key: %x  not after: %x", key, previous)
			return n, fault.ErrInvalidKeyOrder
		}
		previous = append(previous[:0], key...)

		tree.Insert(string(key), string(source.Value()))
		n += 1
		if 0 == n%10000 {
			log.Debugf("loaded: %d  height: %d", n, tree.Height())
		}
	}
	if err := source.Error(); nil != err {
		log.Errorf("source error: %s", err)
		return n, err
	}
	log.Infof("loaded: %d  count: %d  height: %d", n, tree.Count(), tree.Height())
	return n, nil
}

// Verify - walk the tree and a fresh source together, both must
// deliver the same pairs in the same order
//
// only meaningful for a tree using byte (lexical) key order
func Verify(tree *avl.Tree[string, string], source Source, log *logger.L) error {
	defer source.Release()

	next, stop := iter.Pull2(tree.All())
	defer stop()

	n := 0
	for source.Next() {
		key, value, ok := next()
		if !ok {
			log.Errorf("tree ended after: %d items", n)
			return fault.ErrInvalidCount
		}
		if key != string(source.Key()) || value != string(source.Value()) {
			log.Errorf("item: %d  tree key: %x  source key: %x", n, key, source.Key())
			return fault.ErrOrderViolation
		}
		n += 1
	}
	if err := source.Error(); nil != err {
		return err
	}
	if _, _, ok := next(); ok {
		log.Errorf("tree has more than: %d items", n)
		return fault.ErrInvalidCount
	}
	log.Infof("verified: %d items", n)
	return nil
}
