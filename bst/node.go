// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Side - which child link of a parent holds a node
//
// the values double as the balance change caused by a subtree on
// that side growing by one level
type Side int

// the possible sides
const (
	Left   Side = -1
	NoSide Side = 0
	Right  Side = +1
)

// String - for debug output
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Node - a node in the tree
type Node[K, V any] struct {
	left    *Node[K, V] // left sub-tree
	right   *Node[K, V] // right sub-tree
	up      *Node[K, V] // points to parent node
	key     K           // key part for ordering
	value   V           // value part for data storage
	balance int         // height(right) - height(left), maintained by balancing engines
}

// NewNode - allocate a detached node
func NewNode[K, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{
		key:   key,
		value: value,
	}
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// SetValue - overwrite the value part
func (p *Node[K, V]) SetValue(value V) {
	p.value = value
}

// ValueRef - address of the value part
//
// valid for as long as the key stays in the tree, nodes are moved
// by rebalancing but never copied
func (p *Node[K, V]) ValueRef() *V {
	return &p.value
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Left - return left child of a node
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return right child of a node
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Child - the child on a particular side
func (p *Node[K, V]) Child(s Side) *Node[K, V] {
	switch s {
	case Left:
		return p.left
	case Right:
		return p.right
	default:
		return nil
	}
}

// Side - which side of its parent this node hangs from, NoSide for the root
func (p *Node[K, V]) Side() Side {
	switch {
	case nil == p.up:
		return NoSide
	case p.up.left == p:
		return Left
	default:
		return Right
	}
}

// SetLeft - make c the left child, fixing its parent link
func (p *Node[K, V]) SetLeft(c *Node[K, V]) {
	p.left = c
	if nil != c {
		c.up = p
	}
}

// SetRight - make c the right child, fixing its parent link
func (p *Node[K, V]) SetRight(c *Node[K, V]) {
	p.right = c
	if nil != c {
		c.up = p
	}
}

// Balance - height(right) - height(left) as recorded by a balancing engine
func (p *Node[K, V]) Balance() int {
	return p.balance
}

// SetBalance - overwrite the balance factor
func (p *Node[K, V]) SetBalance(balance int) {
	p.balance = balance
}

// AdjustBalance - add diff to the balance factor, returns the new value
func (p *Node[K, V]) AdjustBalance(diff int) int {
	p.balance += diff
	return p.balance
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	if depth == 0 {
		return []*Node[K, V]{p}
	}
	nodes := []*Node[K, V]{}
	if p.left != nil {
		nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
	}
	if p.right != nil {
		nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
	}
	return nodes
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[K, V]) Next() *Node[K, V] {
	if p.right != nil {
		return p.right.first()
	}
	for {
		up := p.up
		if up == nil {
			return nil
		}
		if up.left == p {
			return up
		}
		p = up
	}
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node[K, V]) Prev() *Node[K, V] {
	if p.left != nil {
		return p.left.last()
	}
	for {
		up := p.up
		if up == nil {
			return nil
		}
		if up.right == p {
			return up
		}
		p = up
	}
}

// Successor - in-order successor of a node, nil for the last node
func Successor[K, V any](p *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}
	return p.Next()
}

// Predecessor - in-order predecessor of a node, nil for the first node
func Predecessor[K, V any](p *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}
	return p.Prev()
}
