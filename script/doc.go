// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - drive an AVL tree from a Lua script
//
// the script sees a global table "tree" with the functions:
//
//   tree.insert(key, value)  → true if key was new
//   tree.remove(key)         → true if key was present
//   tree.find(key)           → value or nil
//   tree.get(key)            → value, raises an error if absent
//   tree.count()             → number of keys
//   tree.height()            → height, -1 when empty
//   tree.check()             → true, or false and a message
//   tree.print()             → draw the tree on the output
//   tree.clear()             → remove all keys
//   tree.keys()              → array of keys in order
//
// keys are strings; numbers are converted to strings and, with
// numeric key order, compared by value.
package script
