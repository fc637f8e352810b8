// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/bst"
)

// ANSI colour codes
const (
	coReset  = "\x1b[0m"
	coBright = "\x1b[1m"
	coDim    = "\x1b[2m"
	coGreen  = "\x1b[32m"
	coYellow = "\x1b[33m"
	coBlue   = "\x1b[34m"
	coRed    = "\x1b[31m"
)

// colour only when configured and writing to a terminal
func useColour(configured bool, w io.Writer) bool {
	if !configured {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return terminal.IsTerminal(int(f.Fd()))
}

// node label showing key, value and balance
func labeller(colour bool) bst.Labeller[string, string] {
	return func(p *bst.Node[string, string]) string {
		b := p.Balance()
		if !colour {
			return fmt.Sprintf("%s → %s %+d", p.Key(), p.Value(), b)
		}
		c := coGreen
		switch {
		case b < -1 || b > 1:
			c = coRed
		case b < 0:
			c = coBlue
		case b > 0:
			c = coYellow
		}
		return fmt.Sprintf("%s%s%s %s→ %s%s %s%+d%s", coBright, p.Key(), coReset, coDim, p.Value(), coReset, c, b, coReset)
	}
}

// draw a tree followed by a summary line
func printTree(w io.Writer, tree *avl.Tree[string, string], colour bool) {
	depth := tree.PrintWith(w, labeller(colour))
	stats := tree.Rotations()
	fmt.Fprintf(w, "count: %d  depth: %d  single rotations: %d  double rotations: %d\n",
		tree.Count(), depth, stats.Single, stats.Double)
}
