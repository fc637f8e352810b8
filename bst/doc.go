// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree with parent pointers
//
// The tree keeps an ordered set of unique keys each with an
// associated value, inserting a key that is already present just
// overwrites the value.  Every node carries a link to its parent so
// that iteration and upward fix-up walks need no stack.
//
// The node also carries a balance field which this package never
// interprets, it exists so that balancing engines (see package avl)
// can build on the same node type.  The structural helpers SetLeft,
// SetRight, Replace and the balance setters are for such engines,
// ordinary callers should only use Insert, Remove and the lookups.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
package bst
