// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package leafpath - check that every leaf of a binary tree is at the
// same depth
package leafpath

// Binary - any node type with two child links, where the zero value
// (normally a nil pointer) means no child
type Binary[N any] interface {
	comparable
	Left() N
	Right() N
}

// Equal - true if every root to leaf path has the same length
// an empty tree is considered equal
func Equal[N Binary[N]](root N) bool {
	var none N
	if none == root {
		return true
	}
	return check(root, 0, baseLength(root))
}

// Depths - the depth of every leaf from left to right
func Depths[N Binary[N]](root N) []int {
	var none N
	depths := []int{}
	var walk func(p N, depth int)
	walk = func(p N, depth int) {
		if none == p {
			return
		}
		l, r := p.Left(), p.Right()
		if none == l && none == r {
			depths = append(depths, depth)
			return
		}
		walk(l, depth+1)
		walk(r, depth+1)
	}
	walk(root, 0)
	return depths
}

// depth of the leftmost leaf, following right links only where no
// left child exists
func baseLength[N Binary[N]](p N) int {
	var none N
	length := 0
	for {
		switch {
		case none != p.Left():
			p = p.Left()
		case none != p.Right():
			p = p.Right()
		default:
			return length
		}
		length += 1
	}
}

func check[N Binary[N]](p N, depth int, base int) bool {
	var none N
	if none == p {
		return true
	}
	l, r := p.Left(), p.Right()
	if none == l && none == r {
		return depth == base
	}
	return check(l, depth+1, base) && check(r, depth+1, base)
}
