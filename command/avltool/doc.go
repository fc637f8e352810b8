// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltool - exercise AVL trees from Lua scripts, LevelDB databases
// and random workloads
//
// all commands read a Lua configuration file given by --conf; see
// avltool.conf.sample for the available settings.
package main
