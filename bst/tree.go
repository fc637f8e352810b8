// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root       *Node[K, V]
	count      int
	compare    func(a, b K) int
	generation uint64 // incremented by every structural change
}

// New - create an initially empty tree using the natural key order
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc - create an initially empty tree ordered by compare
//
// compare must be a strict total order returning <0, 0, >0
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	return &Tree[K, V]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Compare - the ordering function of the tree
func (tree *Tree[K, V]) Compare(a, b K) int {
	return tree.compare(a, b)
}

// Generation - a counter that changes whenever the shape of the tree changes
func (tree *Tree[K, V]) Generation() uint64 {
	return tree.generation
}

// Find - the node holding key or nil
func (tree *Tree[K, V]) Find(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		c := tree.compare(key, p.key)
		switch {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Min - the node with the lowest key value
func (tree *Tree[K, V]) Min() *Node[K, V] {
	return tree.root.first()
}

// Max - the node with the highest key value
func (tree *Tree[K, V]) Max() *Node[K, V] {
	return tree.root.last()
}

// Replace - put n into the slot currently occupied by old
//
// n may be nil to simply unlink old, the links of old itself are not
// touched so the caller can still reach its children
func (tree *Tree[K, V]) Replace(old *Node[K, V], n *Node[K, V]) {
	tree.link(old.up, old.Side(), n)
	tree.generation += 1
}

// Clear - release all nodes
//
// each node is unlinked exactly once by a bottom up sweep so no
// references survive in detached nodes
func (tree *Tree[K, V]) Clear() {
	p := tree.root
	for nil != p {
		switch {
		case nil != p.left:
			p = p.left
		case nil != p.right:
			p = p.right
		default:
			up := p.up
			if nil != up {
				if up.left == p {
					up.left = nil
				} else {
					up.right = nil
				}
			}
			p.release()
			p = up
		}
	}
	tree.root = nil
	tree.count = 0
	tree.generation += 1
}

// Height - edges on the longest path from the root, -1 for an empty tree
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

// internal: set the side link of up (or the root) to n
func (tree *Tree[K, V]) link(up *Node[K, V], side Side, n *Node[K, V]) {
	switch side {
	case Left:
		up.left = n
	case Right:
		up.right = n
	default:
		tree.root = n
	}
	if nil != n {
		n.up = up
	}
}

// internal: drop all references held by a detached node
func (p *Node[K, V]) release() {
	var key K
	var value V
	p.up = nil
	p.left = nil
	p.right = nil
	p.key = key
	p.value = value
	p.balance = 0
}

// internal: recursive height
func height[K, V any](p *Node[K, V]) int {
	if nil == p {
		return -1
	}
	return 1 + max(height(p.left), height(p.right))
}
