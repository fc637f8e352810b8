// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new node into the tree, or overwrite the value
// of an existing key
// returns true if a new node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	return tree.insertNode(bst.NewNode(key, value))
}

func (tree *Tree[K, V]) insertNode(n *bst.Node[K, V]) bool {
	parent, side, inserted := tree.base.InsertLeaf(n)
	if !inserted {
		return false
	}
	if nil != parent {
		tree.insertFix(parent, side)
	}
	return true
}

// walk up from the parent of a new leaf: side is the branch of p
// that has just grown by one
func (tree *Tree[K, V]) insertFix(p *bst.Node[K, V], side bst.Side) {
	for nil != p {
		switch b := p.AdjustBalance(int(side)); b {
		case 0:
			// shorter side caught up, height unchanged
			return
		case -1, +1:
			side = p.Side()
			p = p.Parent()
		case -2, +2:
			heavy := bst.Right
			if b < 0 {
				heavy = bst.Left
			}
			c := p.Child(heavy)
			if nil == c || 0 == c.Balance() {
				fault.Panicf("avl: insert: node: %v  balance: %d  heavy child is level", p.Key(), b)
			}
			tree.rebalance(p)
			return
		default:
			fault.Panicf("avl: insert: node: %v  balance: %d out of range", p.Key(), b)
		}
	}
}
