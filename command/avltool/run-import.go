// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/loader"
	"github.com/bitmark-inc/avltree/script"
)

func runImport(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}

	directory := m.config.Database.Directory
	if d := c.String("database"); "" != d {
		directory = configuration.EnsureAbsolute(m.config.DataDirectory, d)
	}
	prefix := m.config.Database.Prefix
	if p := c.String("prefix"); "" != p {
		prefix = p
	}

	if m.verbose {
		fmt.Fprintf(m.e, "database: %s  prefix: %q\n", directory, prefix)
	}

	database, err := loader.Open(directory)
	if nil != err {
		return err
	}
	defer database.Close()

	log := logger.New("import")

	tree, err := script.NewTree(m.config.KeyOrder, nil)
	if nil != err {
		return err
	}

	n, err := loader.Load(tree, database.Source([]byte(prefix)), log)
	if nil != err {
		return err
	}

	if err := tree.Check(); nil != err {
		return err
	}

	if c.Bool("verify") {
		if configuration.LexicalOrder != m.config.KeyOrder {
			log.Warnf("verify with key order: %s", m.config.KeyOrder)
		}
		if err := loader.Verify(tree, database.Source([]byte(prefix)), log); nil != err {
			return err
		}
	}

	stats := tree.Rotations()
	fmt.Fprintf(m.w, "imported: %d  count: %d  height: %d  single rotations: %d  double rotations: %d\n",
		n, tree.Count(), tree.Height(), stats.Single, stats.Double)
	return nil
}
