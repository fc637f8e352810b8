// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - insert a key/value, overwriting the value of an existing key
//
// returns true if a new node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	_, _, inserted := tree.InsertLeaf(NewNode(key, value))
	return inserted
}

// InsertLeaf - attach a detached node by ordinary descent
//
// On success returns the parent the node was attached under (nil if
// it became the root), the side it was attached on and true.
//
// If the key is already present the existing node's value is
// overwritten from n, n is discarded, and the existing node is
// returned with NoSide and false.  The shape of the tree does not
// change in this case.
func (tree *Tree[K, V]) InsertLeaf(n *Node[K, V]) (*Node[K, V], Side, bool) {
	n.up = nil
	n.left = nil
	n.right = nil
	n.balance = 0

	if nil == tree.root {
		tree.link(nil, NoSide, n)
		tree.added()
		return nil, NoSide, true
	}

	p := tree.root
	for {
		c := tree.compare(n.key, p.key)
		switch {
		case c < 0:
			if nil == p.left {
				p.SetLeft(n)
				tree.added()
				return p, Left, true
			}
			p = p.left
		case c > 0:
			if nil == p.right {
				p.SetRight(n)
				tree.added()
				return p, Right, true
			}
			p = p.right
		default:
			p.value = n.value
			return p, NoSide, false
		}
	}
}

// internal: account for a new node
func (tree *Tree[K, V]) added() {
	tree.count += 1
	tree.generation += 1
}
