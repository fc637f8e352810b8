// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	lua "github.com/yuin/gopher-lua"
)

func (r *Runner) exports() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"insert": r.insert,
		"remove": r.remove,
		"find":   r.find,
		"get":    r.get,
		"count":  r.count,
		"height": r.height,
		"check":  r.checkTree,
		"print":  r.print,
		"clear":  r.clear,
		"keys":   r.keys,
	}
}

func (r *Runner) insert(L *lua.LState) int {
	key := L.CheckString(1)
	value := L.OptString(2, "")
	added := r.tree.Insert(key, value)
	r.log.Tracef("insert: %q → %q  added: %t", key, value, added)
	r.verify(L, "insert", key)
	L.Push(lua.LBool(added))
	return 1
}

func (r *Runner) remove(L *lua.LState) int {
	key := L.CheckString(1)
	removed := r.tree.Remove(key)
	r.log.Tracef("remove: %q  removed: %t", key, removed)
	r.verify(L, "remove", key)
	L.Push(lua.LBool(removed))
	return 1
}

func (r *Runner) find(L *lua.LState) int {
	value, ok := r.tree.Find(L.CheckString(1))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(value))
	return 1
}

func (r *Runner) get(L *lua.LState) int {
	key := L.CheckString(1)
	value, err := r.tree.Get(key)
	if nil != err {
		L.RaiseError("get: %q: %s", key, err)
		return 0
	}
	L.Push(lua.LString(value))
	return 1
}

func (r *Runner) count(L *lua.LState) int {
	L.Push(lua.LNumber(r.tree.Count()))
	return 1
}

func (r *Runner) height(L *lua.LState) int {
	L.Push(lua.LNumber(r.tree.Height()))
	return 1
}

func (r *Runner) checkTree(L *lua.LState) int {
	if err := r.tree.Check(); nil != err {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

func (r *Runner) print(L *lua.LState) int {
	depth := r.tree.Print(r.output, L.OptBool(1, true))
	L.Push(lua.LNumber(depth))
	return 1
}

func (r *Runner) clear(L *lua.LState) int {
	r.tree.Clear()
	return 0
}

func (r *Runner) keys(L *lua.LState) int {
	t := L.NewTable()
	for key := range r.tree.Keys() {
		t.Append(lua.LString(key))
	}
	L.Push(t)
	return 1
}

// stop the script if the tree is no longer consistent
func (r *Runner) verify(L *lua.LState, operation string, key string) {
	if !r.check {
		return
	}
	if err := r.tree.Check(); nil != err {
		r.log.Criticalf("%s: %q  tree check failed: %s", operation, key, err)
		L.RaiseError("%s: %q: %s", operation, key, err)
	}
}
