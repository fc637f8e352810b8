// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"iter"

	"github.com/bitmark-inc/avltree/fault"
)

// Iterator - ascending in-order cursor
//
// an iterator is bound to the generation of the tree at creation,
// any insert of a new key, removal or rebalancing invalidates it and
// Next then returns false with Err set to ErrIteratorInvalidated.
// Overwriting the value of an existing key does not invalidate.
type Iterator[K, V any] struct {
	tree       *Tree[K, V]
	current    *Node[K, V]
	next       *Node[K, V]
	generation uint64
	err        error
}

// Begin - iterator positioned before the lowest key
func (tree *Tree[K, V]) Begin() *Iterator[K, V] {
	return tree.iteratorAt(tree.root.first())
}

// Seek - iterator whose first Next yields key, or an exhausted
// iterator if key is not present
func (tree *Tree[K, V]) Seek(key K) *Iterator[K, V] {
	return tree.iteratorAt(tree.Find(key))
}

func (tree *Tree[K, V]) iteratorAt(p *Node[K, V]) *Iterator[K, V] {
	return &Iterator[K, V]{
		tree:       tree,
		next:       p,
		generation: tree.generation,
	}
}

// Next - advance, false at the end or if the tree changed shape
func (it *Iterator[K, V]) Next() bool {
	if nil != it.err {
		return false
	}
	if it.generation != it.tree.generation {
		it.err = fault.ErrIteratorInvalidated
		it.current = nil
		it.next = nil
		return false
	}
	if nil == it.next {
		it.current = nil
		return false
	}
	it.current = it.next
	it.next = it.current.Next()
	return true
}

// Node - the current node, nil before the first Next or after the end
func (it *Iterator[K, V]) Node() *Node[K, V] {
	return it.current
}

// Key - key of the current node
func (it *Iterator[K, V]) Key() K {
	return it.current.key
}

// Value - value of the current node
func (it *Iterator[K, V]) Value() V {
	return it.current.value
}

// Err - non-nil if iteration stopped because the tree was modified
func (it *Iterator[K, V]) Err() error {
	return it.err
}

// All - lazy ascending sequence of key/value pairs
//
// each range over the result restarts from the lowest key; modifying
// the shape of the tree inside the loop body is a programming error
// and panics
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := tree.Begin()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
		if err := it.Err(); nil != err {
			fault.Panicf("bst: range over tree: %s", err)
		}
	}
}

// Keys - lazy ascending sequence of keys
func (tree *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range tree.All() {
			if !yield(k) {
				return
			}
		}
	}
}
