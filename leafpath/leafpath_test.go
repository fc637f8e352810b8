// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leafpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/leafpath"
)

func plain(keys ...int) *bst.Tree[int, struct{}] {
	tree := bst.New[int, struct{}]()
	for _, k := range keys {
		tree.Insert(k, struct{}{})
	}
	return tree
}

func TestEqual(t *testing.T) {
	testItems := []struct {
		name     string
		keys     []int
		expected bool
	}{
		{"empty", nil, true},
		{"single", []int{1}, true},
		{"one child", []int{2, 1}, true},
		{"chain", []int{1, 2, 3, 4}, true},
		{"full", []int{2, 1, 3}, true},
		{"uneven", []int{2, 1, 3, 4}, false},
		{"perfect", []int{4, 2, 6, 1, 3, 5, 7}, true},
		{"deep left", []int{4, 2, 6, 1}, false},
		{"bent paths", []int{4, 2, 6, 3, 5}, true},
	}

	for _, item := range testItems {
		tree := plain(item.keys...)
		assert.Equal(t, item.expected, leafpath.Equal(tree.Root()), item.name)
	}
}

func TestDepths(t *testing.T) {
	tree := plain(4, 2, 6, 1, 5, 7)
	assert.Equal(t, []int{2, 2, 2}, leafpath.Depths(tree.Root()), "depths")

	tree = plain(4, 2, 6, 7)
	assert.Equal(t, []int{1, 2}, leafpath.Depths(tree.Root()), "depths")

	assert.Empty(t, leafpath.Depths(plain().Root()), "empty")
}

func TestBalancedTreeLeaves(t *testing.T) {
	tree := avl.New[int, int]()
	for i := 1; i <= 31; i += 1 {
		tree.Insert(i, i)
	}
	assert.True(t, leafpath.Equal(tree.Root()), "perfect tree")

	tree.Remove(1)
	assert.True(t, leafpath.Equal(tree.Root()), "sibling still at full depth")

	tree.Remove(3)
	assert.False(t, leafpath.Equal(tree.Root()), "after remove")
}
