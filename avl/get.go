// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/fault"
)

// Find - look up a key
// returns the value and true if found
func (tree *Tree[K, V]) Find(key K) (V, bool) {
	p := tree.base.Find(key)
	if nil == p {
		var value V
		return value, false
	}
	return p.Value(), true
}

// Get - value of a key that must be present
func (tree *Tree[K, V]) Get(key K) (V, error) {
	p := tree.base.Find(key)
	if nil == p {
		var value V
		return value, fault.ErrKeyNotFound
	}
	return p.Value(), nil
}

// Ref - pointer to the value stored for a key, inserting the zero
// value first if the key is absent
//
// the pointer stays valid until the key is removed
func (tree *Tree[K, V]) Ref(key K) *V {
	if p := tree.base.Find(key); nil != p {
		return p.ValueRef()
	}
	var value V
	n := bst.NewNode(key, value)
	tree.insertNode(n)
	return n.ValueRef()
}

// Search - the node holding a key, nil if absent
func (tree *Tree[K, V]) Search(key K) *bst.Node[K, V] {
	return tree.base.Find(key)
}

// Seek - iterator positioned at a key, already at end if absent
func (tree *Tree[K, V]) Seek(key K) *bst.Iterator[K, V] {
	return tree.base.Seek(key)
}

// Begin - iterator positioned before the lowest key
func (tree *Tree[K, V]) Begin() *bst.Iterator[K, V] {
	return tree.base.Begin()
}

// All - range over keys and values in ascending key order
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return tree.base.All()
}

// Keys - range over keys in ascending order
func (tree *Tree[K, V]) Keys() iter.Seq[K] {
	return tree.base.Keys()
}
