// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/fault"
)

// restore the balance of a node at ±2
// returns the root of the rotated sub-tree and whether that sub-tree
// is now one level lower than before the violation
func (tree *Tree[K, V]) rebalance(p *bst.Node[K, V]) (*bst.Node[K, V], bool) {
	heavy := bst.Left
	if p.Balance() > 0 {
		heavy = bst.Right
	}
	d := int(heavy)

	c := p.Child(heavy)
	if nil == c {
		fault.Panicf("avl: rebalance: node: %v  balance: %d  missing %s child", p.Key(), p.Balance(), heavy)
	}

	switch c.Balance() {

	case d: // zig-zig
		tree.rotate(p, heavy)
		p.SetBalance(0)
		c.SetBalance(0)
		tree.stats.Single += 1
		return c, true

	case 0: // zig-zig, only possible after a removal
		tree.rotate(p, heavy)
		p.SetBalance(d)
		c.SetBalance(-d)
		tree.stats.Single += 1
		return c, false

	case -d: // zig-zag
		g := c.Child(-heavy)
		if nil == g {
			fault.Panicf("avl: rebalance: node: %v  balance: %d  missing grandchild", c.Key(), c.Balance())
		}
		tree.rotate(c, -heavy)
		tree.rotate(p, heavy)
		switch g.Balance() {
		case d:
			p.SetBalance(-d)
			c.SetBalance(0)
		case 0:
			p.SetBalance(0)
			c.SetBalance(0)
		case -d:
			p.SetBalance(0)
			c.SetBalance(d)
		default:
			fault.Panicf("avl: rebalance: node: %v  balance: %d out of range", g.Key(), g.Balance())
		}
		g.SetBalance(0)
		tree.stats.Double += 1
		return g, true

	default:
		fault.Panicf("avl: rebalance: node: %v  balance: %d out of range", c.Key(), c.Balance())
	}
	return nil, false
}

// rotate about p moving its heavy child up into its place
func (tree *Tree[K, V]) rotate(p *bst.Node[K, V], heavy bst.Side) {
	if bst.Right == heavy {
		tree.rotateLeft(p)
	} else {
		tree.rotateRight(p)
	}
}

func (tree *Tree[K, V]) rotateLeft(p *bst.Node[K, V]) {
	c := p.Right()
	if nil == c {
		fault.Panicf("avl: rotate left: node: %v has no right child", p.Key())
	}
	if nil != tree.log {
		tree.log.Tracef("rotate left about: %v", p.Key())
	}
	tree.base.Replace(p, c)
	p.SetRight(c.Left())
	c.SetLeft(p)
}

func (tree *Tree[K, V]) rotateRight(p *bst.Node[K, V]) {
	c := p.Left()
	if nil == c {
		fault.Panicf("avl: rotate right: node: %v has no left child", p.Key())
	}
	if nil != tree.log {
		tree.log.Tracef("rotate right about: %v", p.Key())
	}
	tree.base.Replace(p, c)
	p.SetLeft(c.Right())
	c.SetRight(p)
}
