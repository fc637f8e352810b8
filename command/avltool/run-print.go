// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

func runPrint(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}

	if 0 == c.NArg() {
		return fault.ErrMissingParameters
	}

	tree, err := script.NewTree(m.config.KeyOrder, m.log)
	if nil != err {
		return err
	}

	if err := build(tree, c.Args(), splitKeys(c.String("remove"))); nil != err {
		return err
	}

	printTree(m.w, tree, m.colour)
	return nil
}

// insert then remove, checking the tree after every step
func build(tree *avl.Tree[string, string], insert []string, remove []string) error {
	for i, key := range insert {
		tree.Insert(key, strings.Repeat("*", i%3+1))
		if err := tree.Check(); nil != err {
			return err
		}
	}
	for _, key := range remove {
		tree.Remove(key)
		if err := tree.Check(); nil != err {
			return err
		}
	}
	return nil
}

func splitKeys(s string) []string {
	keys := []string{}
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); "" != k {
			keys = append(keys, k)
		}
	}
	return keys
}
