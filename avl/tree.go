// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/bst"
)

// Stats - counts of rebalancing rotations performed on a tree
type Stats struct {
	Single int // zig-zig: one rotation
	Double int // zig-zag: two rotations
}

// Tree - the base of a balanced binary tree
type Tree[K, V any] struct {
	base  *bst.Tree[K, V]
	stats Stats
	log   *logger.L
}

// Option - configure a tree at creation
type Option[K, V any] func(*Tree[K, V])

// WithLogger - trace rotations to the given channel
func WithLogger[K, V any](log *logger.L) Option[K, V] {
	return func(tree *Tree[K, V]) {
		tree.log = log
	}
}

// New - create an empty tree ordered by the natural order of its keys
func New[K cmp.Ordered, V any](options ...Option[K, V]) *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K], options...)
}

// NewFunc - create an empty tree ordered by compare, which must
// return a negative, zero or positive value like cmp.Compare
func NewFunc[K, V any](compare func(a, b K) int, options ...Option[K, V]) *Tree[K, V] {
	tree := &Tree[K, V]{
		base: bst.NewFunc[K, V](compare),
	}
	for _, option := range options {
		option(tree)
	}
	return tree
}

// IsEmpty - true if no nodes are in the tree
func (tree *Tree[K, V]) IsEmpty() bool {
	return tree.base.IsEmpty()
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.base.Count()
}

// Height - edges on the longest path from the root, -1 for an empty tree
func (tree *Tree[K, V]) Height() int {
	return tree.base.Height()
}

// Root - the root node, nil if empty
func (tree *Tree[K, V]) Root() *bst.Node[K, V] {
	return tree.base.Root()
}

// First - the node with the lowest key
func (tree *Tree[K, V]) First() *bst.Node[K, V] {
	return tree.base.Min()
}

// Last - the node with the highest key
func (tree *Tree[K, V]) Last() *bst.Node[K, V] {
	return tree.base.Max()
}

// Min - lowest key and its value, false if empty
func (tree *Tree[K, V]) Min() (K, V, bool) {
	return entry(tree.base.Min())
}

// Max - highest key and its value, false if empty
func (tree *Tree[K, V]) Max() (K, V, bool) {
	return entry(tree.base.Max())
}

// Rotations - rebalancing statistics since creation or the last Clear
func (tree *Tree[K, V]) Rotations() Stats {
	return tree.stats
}

// Clear - remove all nodes
func (tree *Tree[K, V]) Clear() {
	tree.base.Clear()
	tree.stats = Stats{}
}

func entry[K, V any](p *bst.Node[K, V]) (K, V, bool) {
	if nil == p {
		var key K
		var value V
		return key, value, false
	}
	return p.Key(), p.Value(), true
}
