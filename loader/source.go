// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package loader - fill an AVL tree from the keys of a LevelDB database
package loader

import (
	"os"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avltree/fault"
)

// Source - ordered key/value pairs, as produced by a LevelDB iterator
type Source interface {
	Next() bool
	Key() []byte
	Value() []byte
	Release()
	Error() error
}

// Database - a read only LevelDB database
type Database struct {
	db *leveldb.DB
}

// Open - open an existing database
func Open(directory string) (*Database, error) {
	if _, err := os.Stat(directory); os.IsNotExist(err) {
		return nil, fault.ErrNotFoundDatabase
	}
	db, err := leveldb.OpenFile(directory, &opt.Options{
		ErrorIfMissing: true,
		ReadOnly:       true,
	})
	if nil != err {
		return nil, err
	}
	return &Database{db: db}, nil
}

// Source - iterate over all keys starting with prefix, every key if
// prefix is empty
func (d *Database) Source(prefix []byte) Source {
	var r *util.Range
	if 0 != len(prefix) {
		r = util.BytesPrefix(prefix)
	}
	return d.db.NewIterator(r, nil)
}

// Close - release the database
func (d *Database) Close() error {
	return d.db.Close()
}
