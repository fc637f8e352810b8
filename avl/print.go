// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"io"

	"github.com/bitmark-inc/avltree/bst"
)

// Print - draw the tree sideways, root on the left
// returns the depth of the tree
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	return tree.base.Print(w, printData)
}

// PrintWith - draw the tree with a custom label for each node
func (tree *Tree[K, V]) PrintWith(w io.Writer, label bst.Labeller[K, V]) int {
	return tree.base.PrintWith(w, label)
}
