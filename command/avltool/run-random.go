// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/stress"
)

// number of operations between full checks when the configuration
// does not ask for a check after every one
const randomCheckInterval = 1000

func runRandom(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}

	options := stress.Options{
		Operations:    c.Int("operations"),
		KeyRange:      c.Int("range"),
		InsertPercent: c.Int("insert"),
		CheckEvery:    randomCheckInterval,
		Seed:          c.Int64("seed"),
	}
	if m.config.CheckEveryOperation {
		options.CheckEvery = 1
	}

	// stress keys are zero padded so either key order works
	tree := avl.New[string, string]()
	result, err := stress.Run(tree, options, logger.New("random"))
	if nil != err {
		return err
	}

	if c.Bool("print") {
		printTree(m.w, tree, m.colour)
	}
	fmt.Fprintf(m.w, "%s\n", result)
	return nil
}
