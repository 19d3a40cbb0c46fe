// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - batch write spanning all pools of one store
//
// a transaction must Begin before any Put or Delete and ends with
// either Commit or Abort; reads issued between Begin and Commit see
// the pending writes
type Transaction interface {
	Begin() error
	Abort()
	Put(*PoolHandle, []byte, []byte)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	Commit() error
	InUse() bool
}

type transactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &transactionData{
		access: access,
	}
}

func (t *transactionData) Begin() error {
	return t.access.Begin()
}

func (t *transactionData) Abort() {
	t.access.Abort()
}

func (t *transactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.Put(key, value)
}

func (t *transactionData) Delete(handle *PoolHandle, key []byte) {
	handle.Delete(key)
}

func (t *transactionData) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (t *transactionData) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

func (t *transactionData) Commit() error {
	err := t.access.Commit()
	t.access.Abort() // reset batch and release for reuse
	return err
}

func (t *transactionData) InUse() bool {
	return t.access.InUse()
}
