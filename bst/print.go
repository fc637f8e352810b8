// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Labeller - produce the text shown for a node
type Labeller[K, V any] func(p *Node[K, V]) string

// Print - display an ASCII graphic representation of the tree
//
// the tree is drawn rotated left, right sub-trees above, returns the
// number of levels
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	return tree.PrintWith(w, func(p *Node[K, V]) string {
		up := interface{}(nil)
		if nil != p.up {
			up = p.up.key
		}
		if printData {
			return fmt.Sprintf("%v → %v ^%v %+2d", p.key, p.value, up, p.balance)
		}
		return fmt.Sprintf("%v ^%v", p.key, up)
	})
}

// PrintWith - as Print but with caller supplied node labels
func (tree *Tree[K, V]) PrintWith(w io.Writer, label Labeller[K, V]) int {
	return printTree(w, tree.root, "", root, label)
}

// internal print - returns the maximum depth of the tree
func printTree[K, V any](w io.Writer, p *Node[K, V], prefix string, br branch, label Labeller[K, V]) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, label)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintln(w, label(p))
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, label)
	}
	return 1 + max(rd, ld)
}
