// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/fault"
)

// Remove - remove a key and its value from the tree
// returns false if the key was not present
func (tree *Tree[K, V]) Remove(key K) bool {
	_, removed := tree.Delete(key)
	return removed
}

// Delete - remove a node from the tree
// returns the value that was stored with the key
func (tree *Tree[K, V]) Delete(key K) (V, bool) {
	removal, ok := tree.base.RemoveByKey(key)
	if !ok {
		var value V
		return value, false
	}
	tree.removeFix(removal.Parent, removal.Side)
	return removal.Node.Value(), true
}

// walk up from the parent of a detached node: side is the branch of
// p that has just lost one level
func (tree *Tree[K, V]) removeFix(p *bst.Node[K, V], side bst.Side) {
	diff := -int(side)
	for nil != p {

		// rotations move p down so record its position first
		up := p.Parent()
		upSide := p.Side()

		switch b := p.Balance() + diff; b {
		case 0:
			p.SetBalance(b)
		case -1, +1:
			p.SetBalance(b)
			return
		case -2, +2:
			p.SetBalance(b)
			if _, shorter := tree.rebalance(p); !shorter {
				return
			}
		default:
			fault.Panicf("avl: delete: node: %v  balance: %d out of range", p.Key(), b)
		}

		p = up
		diff = -int(upSide)
	}
}
