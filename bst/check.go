// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	if nil != tree.root && nil != tree.root.up {
		return false
	}
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup[K, V any](p *Node[K, V], up *Node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckOrder - in-order keys are strictly ascending and the count matches
func (tree *Tree[K, V]) CheckOrder() bool {
	n := 0
	var previous *Node[K, V]
	for p := tree.root.first(); nil != p; p = p.Next() {
		if nil != previous && tree.compare(previous.key, p.key) >= 0 {
			return false
		}
		previous = p
		n += 1
	}
	return n == tree.count
}

// IsBalanced - true if at every node the heights of the two sub-trees
// differ by at most one
//
// computed from the structure only, stored balance factors are not
// consulted
func (tree *Tree[K, V]) IsBalanced() bool {
	_, ok := balanced(tree.root)
	return ok
}

// internal: height of a sub-tree and whether it is balanced
func balanced[K, V any](p *Node[K, V]) (int, bool) {
	if nil == p {
		return -1, true
	}
	lh, ok := balanced(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := balanced(p.right)
	if !ok {
		return 0, false
	}
	if d := rh - lh; d < -1 || d > 1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}
