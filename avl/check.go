// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"

	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/fault"
)

// IsBalanced - true if the heights of the two sub-trees of every node
// differ by at most one
func (tree *Tree[K, V]) IsBalanced() bool {
	return tree.base.IsBalanced()
}

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return tree.base.CheckUp()
}

// CheckBalance - true if every stored balance is within -1..+1 and
// equals the actual difference in sub-tree heights
func (tree *Tree[K, V]) CheckBalance() bool {
	_, ok := checkBalance(tree.base.Root())
	return ok
}

// Check - run all consistency checks
// returns the first failure
func (tree *Tree[K, V]) Check() error {
	if !tree.base.CheckUp() {
		return fault.ErrParentLinkBroken
	}
	if !tree.base.CheckOrder() {
		return fault.ErrOrderViolation
	}
	if !tree.base.IsBalanced() {
		return fault.ErrUnbalancedTree
	}
	if !tree.CheckBalance() {
		return fault.ErrWrongBalanceFactor
	}
	return nil
}

// HeightBound - the greatest height an AVL tree of n nodes can reach
func HeightBound(n int) int {
	if n <= 0 {
		return -1
	}
	return int(math.Ceil(1.44*math.Log2(float64(n+2)))) - 1
}

func checkBalance[K, V any](p *bst.Node[K, V]) (int, bool) {
	if nil == p {
		return -1, true
	}
	lh, ok := checkBalance(p.Left())
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(p.Right())
	if !ok {
		return 0, false
	}
	b := p.Balance()
	if b < -1 || b > 1 || b != rh-lh {
		return 0, false
	}
	return 1 + max(lh, rh), true
}
