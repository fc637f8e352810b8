// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
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
			logger.DefaultTag: "critical",
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

func newRunner(t *testing.T, order string, check bool) (*script.Runner, *bytes.Buffer) {
	tree, err := script.NewTree(order, nil)
	require.Nil(t, err, "new tree")
	buffer := &bytes.Buffer{}
	return script.New(tree, buffer, logger.New("script-test"), check), buffer
}

func TestMain(m *testing.M) {
	setupTestLogger()
	status := m.Run()
	teardownTestLogger()
	os.Exit(status)
}

func TestRunString(t *testing.T) {
	r, _ := newRunner(t, configuration.LexicalOrder, true)

	err := r.RunString(`
for i = 1, 100 do
    assert(tree.insert(string.format("%03d", i), "v" .. i))
end
assert(not tree.insert("050", "replaced"))
assert(tree.count() == 100)
assert(tree.find("050") == "replaced")
assert(tree.find("missing") == nil)
for i = 1, 100, 2 do
    assert(tree.remove(string.format("%03d", i)))
end
assert(not tree.remove("001"))
assert(tree.check())
`)
	require.Nil(t, err, "script error")

	tree := r.Tree()
	assert.Equal(t, 50, tree.Count(), "count")
	assert.Nil(t, tree.Check(), "check")
	value, ok := tree.Find("002")
	assert.True(t, ok, "found")
	assert.Equal(t, "v2", value, "value")
}

func TestKeysAndHeight(t *testing.T) {
	r, _ := newRunner(t, configuration.NumericOrder, false)

	err := r.RunString(`
for _, k in ipairs({10, 9, 100, 1, 25}) do
    tree.insert(k, "x")
end
local keys = tree.keys()
assert(#keys == 5)
assert(keys[1] == "1" and keys[2] == "9" and keys[3] == "10" and keys[4] == "25" and keys[5] == "100")
assert(tree.height() == 2)
tree.clear()
assert(tree.count() == 0)
assert(tree.height() == -1)
`)
	assert.Nil(t, err, "script error")
}

func TestGetRaisesError(t *testing.T) {
	r, _ := newRunner(t, configuration.LexicalOrder, false)

	err := r.RunString(`tree.insert("a", "1"); assert(tree.get("a") == "1")`)
	assert.Nil(t, err, "get present key")

	err = r.RunString(`tree.get("b")`)
	require.NotNil(t, err, "get missing key")
	assert.Contains(t, err.Error(), fault.ErrKeyNotFound.Error(), "error message")

	err = r.RunString(`
local ok, message = pcall(tree.get, "b")
assert(not ok)
`)
	assert.Nil(t, err, "protected call")
}

func TestPrint(t *testing.T) {
	r, buffer := newRunner(t, configuration.LexicalOrder, false)

	err := r.RunString(`
tree.insert("b", "2")
tree.insert("a", "1")
tree.insert("c", "3")
assert(tree.print() == 2)
`)
	require.Nil(t, err, "script error")
	assert.Contains(t, buffer.String(), "b → 2", "root")
	assert.Contains(t, buffer.String(), "a → 1", "left")
}

func TestRunFile(t *testing.T) {
	r, _ := newRunner(t, configuration.LexicalOrder, true)

	fileName := filepath.Join(t.TempDir(), "ops.lua")
	err := os.WriteFile(fileName, []byte(`tree.insert("k", "v")`), 0600)
	require.Nil(t, err, "write script")

	err = r.RunFile(fileName)
	assert.Nil(t, err, "run file")
	assert.Equal(t, 1, r.Tree().Count(), "count")

	err = r.RunFile(filepath.Join(t.TempDir(), "missing.lua"))
	assert.NotNil(t, err, "missing file")
}

func TestSyntaxError(t *testing.T) {
	r, _ := newRunner(t, configuration.LexicalOrder, false)
	err := r.RunString(`tree.insert(`)
	assert.NotNil(t, err, "syntax error not reported")
}

func TestCompare(t *testing.T) {
	compare, err := script.Compare(configuration.NumericOrder)
	require.Nil(t, err, "numeric")
	assert.Equal(t, -1, compare("9", "10"), "numbers")
	assert.Equal(t, -1, compare("100", "abc"), "number before text")
	assert.Equal(t, +1, compare("abc", "5"), "text after number")
	assert.Equal(t, -1, compare("abc", "abd"), "text")
	assert.Equal(t, 0, compare("7", "7"), "equal")

	compare, err = script.Compare(configuration.LexicalOrder)
	require.Nil(t, err, "lexical")
	assert.Equal(t, +1, compare("9", "10"), "lexical numbers")

	_, err = script.Compare("sideways")
	assert.Equal(t, fault.ErrInvalidKeyOrder, err, "invalid order")

	_, err = script.NewTree("sideways", nil)
	assert.Equal(t, fault.ErrInvalidKeyOrder, err, "invalid order tree")
}
