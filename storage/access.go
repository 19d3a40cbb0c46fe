// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldbutil "github.com/syndtr/goleveldb/leveldb/util"
)

// Access - transactional access to the underlying key-value store
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldbutil.Range) Iterator
	Put([]byte, []byte)
}

// Iterator - iterate key-value pairs inside a key range, avoids
// importing the leveldb iterator type elsewhere
type Iterator interface {
	Next() bool
	Last() bool
	Seek([]byte) bool
	Key() []byte
	Value() []byte
	Release()
	Error() error
}

type accessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, cache Cache) Access {
	return &accessData{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (d *accessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fmt.Errorf("batch already in use")
	}

	d.inUse = true
	return nil
}

func (d *accessData) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *accessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), []byte{})
	d.batch.Delete(key)
}

func (d *accessData) Commit() error {
	defer d.clearCache()
	return d.db.Write(d.batch, nil)
}

func (d *accessData) clearCache() {
	d.cache.Clear()
}

func (d *accessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.clearCache()
	d.inUse = false
}

// Get - after Begin this returns the pending value from the batch
// cache in preference to the value on disk
func (d *accessData) Get(key []byte) ([]byte, error) {
	val, found := d.getFromCache(key)
	if found {
		return val, nil
	}
	return d.getFromDB(key)
}

func (d *accessData) Has(key []byte) (bool, error) {
	val, found := d.getFromCache(key)
	if found {
		// nil marks a pending delete
		return nil != val, nil
	}
	return d.db.Has(key, nil)
}

func (d *accessData) getFromCache(key []byte) ([]byte, bool) {
	return d.cache.Get(string(key))
}

func (d *accessData) getFromDB(key []byte) ([]byte, error) {
	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	} else if nil != err {
		return nil, err
	}
	return value, nil
}

func (d *accessData) Iterator(searchRange *ldbutil.Range) Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *accessData) InUse() bool {
	d.Lock()
	defer d.Unlock()

	return d.inUse
}
