// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"io"

	"github.com/bitmark-inc/logger"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/avltree/avl"
)

const (
	globalName = "tree"
)

// Runner - executes scripts against a single tree
type Runner struct {
	log    *logger.L
	tree   *avl.Tree[string, string]
	output io.Writer
	check  bool
}

// New - create a runner
//
// if check is set the whole tree is verified after every insert or
// remove and the script is stopped at the first failure
func New(tree *avl.Tree[string, string], output io.Writer, log *logger.L, check bool) *Runner {
	return &Runner{
		log:    log,
		tree:   tree,
		output: output,
		check:  check,
	}
}

// Tree - the tree the scripts operate on
func (r *Runner) Tree() *avl.Tree[string, string] {
	return r.tree
}

// RunFile - execute a Lua file
func (r *Runner) RunFile(fileName string) error {
	r.log.Infof("run file: %q", fileName)
	return r.run(func(L *lua.LState) error {
		return L.DoFile(fileName)
	})
}

// RunString - execute a Lua chunk
func (r *Runner) RunString(source string) error {
	r.log.Debug("run string")
	return r.run(func(L *lua.LState) error {
		return L.DoString(source)
	})
}

func (r *Runner) run(do func(L *lua.LState) error) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()
	L.SetGlobal(globalName, L.SetFuncs(L.NewTable(), r.exports()))

	if err := do(L); nil != err {
		r.log.Errorf("script error: %s", err)
		return err
	}
	r.log.Infof("script finished: count: %d  height: %d", r.tree.Count(), r.tree.Height())
	return nil
}
