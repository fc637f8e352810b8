// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

func runScript(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}

	if 0 == c.NArg() {
		return fault.ErrMissingParameters
	}

	runner, err := newRunner(m)
	if nil != err {
		return err
	}

	for _, fileName := range c.Args() {
		if m.verbose {
			fmt.Fprintf(m.e, "running: %s\n", fileName)
		}
		if err := runner.RunFile(fileName); nil != err {
			return err
		}
	}

	if c.Bool("print") {
		printTree(m.w, runner.Tree(), m.colour)
	} else {
		tree := runner.Tree()
		fmt.Fprintf(m.w, "count: %d  height: %d\n", tree.Count(), tree.Height())
	}
	return nil
}

// runner on a fresh tree built from the configuration
func newRunner(m *metadata) (*script.Runner, error) {
	tree, err := script.NewTree(m.config.KeyOrder, nil)
	if nil != err {
		return nil, err
	}
	return script.New(tree, m.w, m.log, m.config.CheckEveryOperation), nil
}
