// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math/rand"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/fault"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func build(keys ...int) *avl.Tree[int, int] {
	tree := avl.New[int, int]()
	for _, k := range keys {
		tree.Insert(k, k*10)
	}
	return tree
}

type shape struct {
	key     int
	left    int // 0 for no child
	right   int
	balance int
}

func assertShape(t *testing.T, tree *avl.Tree[int, int], root int, shapes ...shape) {
	t.Helper()
	require.NotNil(t, tree.Root(), "empty tree")
	assert.Equal(t, root, tree.Root().Key(), "wrong root")
	for _, s := range shapes {
		p := tree.Search(s.key)
		require.NotNil(t, p, "missing key: %d", s.key)
		assert.Equal(t, s.left, keyOf(p.Left()), "left child of: %d", s.key)
		assert.Equal(t, s.right, keyOf(p.Right()), "right child of: %d", s.key)
		assert.Equal(t, s.balance, p.Balance(), "balance of: %d", s.key)
	}
	assert.Nil(t, tree.Check(), "check")
}

func keyOf(p *bst.Node[int, int]) int {
	if nil == p {
		return 0
	}
	return p.Key()
}

func TestSingleLeftRotation(t *testing.T) {
	tree := build(10, 20, 30)
	assertShape(t, tree, 20,
		shape{20, 10, 30, 0},
		shape{10, 0, 0, 0},
		shape{30, 0, 0, 0},
	)
	assert.Equal(t, avl.Stats{Single: 1}, tree.Rotations(), "rotations")
}

func TestSingleRightRotation(t *testing.T) {
	tree := build(30, 20, 10)
	assertShape(t, tree, 20, shape{20, 10, 30, 0})
	assert.Equal(t, avl.Stats{Single: 1}, tree.Rotations(), "rotations")
}

func TestLeftRightRotation(t *testing.T) {
	tree := build(30, 10, 20)
	assertShape(t, tree, 20,
		shape{20, 10, 30, 0},
		shape{10, 0, 0, 0},
		shape{30, 0, 0, 0},
	)
	assert.Equal(t, avl.Stats{Double: 1}, tree.Rotations(), "rotations")
}

func TestRightLeftRotation(t *testing.T) {
	tree := build(10, 30, 20)
	assertShape(t, tree, 20, shape{20, 10, 30, 0})
	assert.Equal(t, avl.Stats{Double: 1}, tree.Rotations(), "rotations")
}

// zig-zag where the grandchild has a child of its own
func TestDoubleRotationBalances(t *testing.T) {
	tree := build(50, 20, 70, 10, 30, 25)
	assertShape(t, tree, 30,
		shape{30, 20, 50, 0},
		shape{20, 10, 25, 0},
		shape{50, 0, 70, +1},
	)

	tree = build(50, 20, 70, 10, 30, 35)
	assertShape(t, tree, 30,
		shape{30, 20, 50, 0},
		shape{20, 10, 0, -1},
		shape{50, 35, 70, 0},
	)
}

func TestAscendingPerfectTree(t *testing.T) {
	tree := build(1, 2, 3, 4, 5, 6, 7)
	assertShape(t, tree, 4,
		shape{4, 2, 6, 0},
		shape{2, 1, 3, 0},
		shape{6, 5, 7, 0},
	)
	assert.Equal(t, 2, tree.Height(), "height")
	assert.Equal(t, avl.Stats{Single: 4}, tree.Rotations(), "rotations")
}

func TestRemoveRootOfPerfectTree(t *testing.T) {
	tree := build(1, 2, 3, 4, 5, 6, 7)
	three := tree.Search(3)

	value, ok := tree.Delete(4)
	assert.True(t, ok, "not deleted")
	assert.Equal(t, 40, value, "deleted value")

	assert.Same(t, three, tree.Root(), "predecessor node not moved to root")
	assertShape(t, tree, 3,
		shape{3, 2, 6, 0},
		shape{2, 1, 0, -1},
	)
	assert.Equal(t, 2, tree.Height(), "height")
}

func TestRemoveWithRotation(t *testing.T) {
	tree := build(1, 2, 3, 4, 5, 6, 7)

	tree.Remove(1)
	tree.Remove(3)
	assert.Equal(t, avl.Stats{Single: 4}, tree.Rotations(), "rotations before")

	tree.Remove(2)
	assertShape(t, tree, 6,
		shape{6, 4, 7, -1},
		shape{4, 0, 5, +1},
		shape{7, 0, 0, 0},
	)
	assert.Equal(t, avl.Stats{Single: 5}, tree.Rotations(), "rotations after")
}

// removal rebalancing that continues above the rotated sub-tree
func TestRemovePropagatesUpward(t *testing.T) {
	tree := build(8, 5, 11, 3, 7, 10, 12, 2, 4, 6, 9, 1)
	assert.Nil(t, tree.Check(), "check before")

	tree.Remove(12)
	assert.Nil(t, tree.Check(), "check after")
	assert.Equal(t, 5, tree.Root().Key(), "root after second rotation")
}

func TestRemovePredecessorWithLeftChild(t *testing.T) {
	tree := build(10, 5, 15, 3, 8, 20, 7)
	assertShape(t, tree, 10,
		shape{10, 5, 15, -1},
		shape{5, 3, 8, +1},
		shape{8, 7, 0, -1},
		shape{15, 0, 20, +1},
	)

	tree.Remove(10)
	assertShape(t, tree, 8,
		shape{8, 5, 15, 0},
		shape{5, 3, 7, 0},
		shape{15, 0, 20, +1},
	)
}

func TestOverwrite(t *testing.T) {
	tree := build(1, 2, 3, 4, 5)
	before := tree.Rotations()
	height := tree.Height()
	node := tree.Search(3)

	added := tree.Insert(3, 333)
	assert.False(t, added, "overwrite reported as added")
	assert.Equal(t, 5, tree.Count(), "count")
	assert.Equal(t, height, tree.Height(), "height")
	assert.Equal(t, before, tree.Rotations(), "rotations")
	assert.Same(t, node, tree.Search(3), "node replaced")

	value, err := tree.Get(3)
	assert.Nil(t, err, "get")
	assert.Equal(t, 333, value, "value")
}

func TestRemoveIdempotent(t *testing.T) {
	tree := build(1, 2, 3, 4, 5)
	assert.True(t, tree.Remove(2), "first remove")
	assert.False(t, tree.Remove(2), "second remove")
	assert.Equal(t, 4, tree.Count(), "count")
	assert.Nil(t, tree.Check(), "check")
}

func TestGetMissing(t *testing.T) {
	tree := build(1)
	_, err := tree.Get(2)
	assert.Equal(t, fault.ErrKeyNotFound, err, "wrong error")
	assert.True(t, fault.IsErrNotFound(err), "wrong class")
}

func TestRef(t *testing.T) {
	tree := avl.New[string, int]()
	for _, w := range []string{"a", "b", "a", "c", "a", "b"} {
		*tree.Ref(w) += 1
	}
	assert.Equal(t, 3, tree.Count(), "count")
	for k, expected := range map[string]int{"a": 3, "b": 2, "c": 1} {
		v, _ := tree.Find(k)
		assert.Equal(t, expected, v, "count of: %s", k)
	}

	// reference survives rotations
	r := tree.Ref("a")
	for _, k := range []string{"d", "e", "f", "g", "h", "i"} {
		tree.Insert(k, 0)
	}
	*r = 99
	v, _ := tree.Find("a")
	assert.Equal(t, 99, v, "write through reference")
	assert.Nil(t, tree.Check(), "check")
}

func TestIteratorInvalidatedByRotation(t *testing.T) {
	tree := build(1, 2)
	it := tree.Begin()
	require.True(t, it.Next(), "first")

	tree.Insert(3, 30)
	assert.False(t, it.Next(), "iterator continued")
	assert.Equal(t, fault.ErrIteratorInvalidated, it.Err(), "error")

	it = tree.Seek(2)
	require.True(t, it.Next(), "seek")
	assert.Equal(t, 20, it.Value(), "value at seek")
	tree.Insert(2, 22)
	assert.True(t, it.Next(), "overwrite invalidated iterator")
	assert.Equal(t, 3, it.Key(), "next key")
}

func TestClear(t *testing.T) {
	tree := build(1, 2, 3, 4, 5, 6, 7)
	tree.Clear()
	assert.True(t, tree.IsEmpty(), "not empty")
	assert.Equal(t, 0, tree.Count(), "count")
	assert.Equal(t, avl.Stats{}, tree.Rotations(), "rotations")
	assert.Equal(t, -1, tree.Height(), "height")

	tree.Insert(1, 1)
	assert.Nil(t, tree.Check(), "check after reuse")
}

func TestHeightBound(t *testing.T) {
	assert.Equal(t, -1, avl.HeightBound(0), "empty")
	for n := 1; n < 5000; n += 1 {
		assert.GreaterOrEqual(t, avl.HeightBound(n), 0, "bound: %d", n)
	}

	tree := avl.New[int, int]()
	for i := 0; i < 4096; i += 1 {
		tree.Insert(i, i)
	}
	assert.LessOrEqual(t, tree.Height(), avl.HeightBound(tree.Count()), "ascending height")
}

// random mix of operations checked against a map
func TestRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(20141))
	tree := avl.New[int, int]()
	model := make(map[int]int)

	for i := 0; i < 20000; i += 1 {
		key := r.Intn(500)
		switch r.Intn(3) {
		case 0, 1:
			_, present := model[key]
			model[key] = i
			assert.Equal(t, !present, tree.Insert(key, i), "insert: %d", key)
		default:
			expected, present := model[key]
			delete(model, key)
			value, ok := tree.Delete(key)
			assert.Equal(t, present, ok, "delete: %d", key)
			if present {
				assert.Equal(t, expected, value, "deleted value: %d", key)
			}
		}
		if 0 == i%97 {
			require.Nil(t, tree.Check(), "check at step: %d", i)
			require.LessOrEqual(t, tree.Height(), avl.HeightBound(tree.Count()), "height at step: %d", i)
		}
	}

	require.Nil(t, tree.Check(), "final check")
	assert.Equal(t, len(model), tree.Count(), "count")
	previous := -1
	for k, v := range tree.All() {
		assert.Greater(t, k, previous, "order")
		assert.Equal(t, model[k], v, "value: %d", k)
		previous = k
	}
}

func TestWithLogger(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	log := logger.New("avl-test")
	tree := avl.New[int, int](avl.WithLogger[int, int](log))
	for i := 0; i < 100; i += 1 {
		tree.Insert(i, i)
	}
	for i := 0; i < 100; i += 2 {
		tree.Remove(i)
	}
	assert.Nil(t, tree.Check(), "check")
	assert.Equal(t, 50, tree.Count(), "count")
}
