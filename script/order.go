// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// Compare - key comparison function for a configured key order
func Compare(order string) (func(a, b string) int, error) {
	switch order {
	case configuration.LexicalOrder, "":
		return strings.Compare, nil
	case configuration.NumericOrder:
		return numeric, nil
	default:
		return nil, fault.ErrInvalidKeyOrder
	}
}

// NewTree - empty tree for the key order, rotations traced to log if not nil
func NewTree(order string, log *logger.L) (*avl.Tree[string, string], error) {
	compare, err := Compare(order)
	if nil != err {
		return nil, err
	}
	if nil == log {
		return avl.NewFunc[string, string](compare), nil
	}
	return avl.NewFunc[string, string](compare, avl.WithLogger[string, string](log)), nil
}

// numbers sort before anything else, the rest lexically
func numeric(a, b string) int {
	x, errA := strconv.ParseFloat(a, 64)
	y, errB := strconv.ParseFloat(b, 64)
	switch {
	case nil == errA && nil == errB:
		if c := cmp.Compare(x, y); 0 != c {
			return c
		}
		return strings.Compare(a, b)
	case nil == errA:
		return -1
	case nil == errB:
		return +1
	default:
		return strings.Compare(a, b)
	}
}
