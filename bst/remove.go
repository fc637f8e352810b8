// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Removal - where a node was physically detached from the tree
type Removal[K, V any] struct {
	Parent *Node[K, V] // parent of the vacated slot, nil if it was the root
	Side   Side        // which side of Parent lost the node
	Node   *Node[K, V] // the detached node, key and value still readable
}

// Remove - removes a specific item from the tree
//
// returns false if the key was not present
func (tree *Tree[K, V]) Remove(key K) bool {
	_, removed := tree.RemoveByKey(key)
	return removed
}

// RemoveByKey - find and physically detach the node holding key
//
// A node with two children first exchanges its position with its
// in-order predecessor, the nodes themselves move, not their
// contents, so any outstanding reference to the predecessor node
// stays valid.  After the exchange the node has at most a left child
// which is promoted into its slot; a leaf is simply unlinked.
//
// The balance fields travel with the positions, not the nodes, so a
// balancing engine sees consistent factors at the vacated slot.
func (tree *Tree[K, V]) RemoveByKey(key K) (Removal[K, V], bool) {
	q := tree.Find(key)
	if nil == q {
		return Removal[K, V]{}, false
	}

	if nil != q.left && nil != q.right {
		tree.swap(q, q.left.last())
	}

	parent := q.up
	side := q.Side()

	child := q.left
	if nil == child {
		child = q.right
	}
	tree.link(parent, side, child)

	q.up = nil
	q.left = nil
	q.right = nil
	q.balance = 0

	tree.count -= 1
	tree.generation += 1

	return Removal[K, V]{
		Parent: parent,
		Side:   side,
		Node:   q,
	}, true
}

// internal: exchange the tree positions of two nodes
//
// links and balance factors are exchanged, keys and values stay with
// their nodes
func (tree *Tree[K, V]) swap(a *Node[K, V], b *Node[K, V]) {
	if a == b || nil == a || nil == b {
		return
	}

	// if adjacent, make a the parent
	if b == a.up {
		a, b = b, a
	}

	aUp, aLeft, aRight, aSide := a.up, a.left, a.right, a.Side()
	bUp, bLeft, bRight, bSide := b.up, b.left, b.right, b.Side()

	if bUp == a {
		switch bSide {
		case Left:
			b.left, b.right = a, aRight
		default:
			b.left, b.right = aLeft, a
		}
		a.left, a.right = bLeft, bRight
		tree.link(aUp, aSide, b)
		a.up = b
	} else {
		b.left, b.right = aLeft, aRight
		a.left, a.right = bLeft, bRight
		tree.link(aUp, aSide, b)
		tree.link(bUp, bSide, a)
	}

	for _, p := range []*Node[K, V]{a, b} {
		if nil != p.left {
			p.left.up = p
		}
		if nil != p.right {
			p.right.up = p
		}
	}

	a.balance, b.balance = b.balance, a.balance
	tree.generation += 1
}
