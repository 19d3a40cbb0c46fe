// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/storage"
)

// test database file
const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test"
)

// Test main entrypoint
func TestMain(m *testing.M) {
	removeFiles()
	os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "error",
		},
	}
	_ = logger.Initialise(logging)

	result := m.Run()

	logger.Finalise()
	removeFiles()
	os.Exit(result)
}

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

func memoryStore(t *testing.T) *storage.Store {
	store, err := storage.InitialiseMemory()
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return store
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one(NEW)"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
	// {"key-one", "data-one"}, // this was removed
})

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// a key that must not exist
var nonExistantKey = []byte("/nonexistant")

// main pool test
func TestPool(t *testing.T) {
	store := memoryStore(t)
	defer store.Finalise()

	p := store.Balances

	trx, err := store.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}

	trx.Put(p, []byte("key-one"), []byte("data-one"))
	trx.Put(p, []byte("key-two"), []byte("data-two"))
	trx.Put(p, []byte("key-remove-me"), []byte("to be deleted"))
	trx.Delete(p, []byte("key-remove-me"))
	trx.Put(p, []byte("key-three"), []byte("data-three"))
	trx.Put(p, []byte("key-four"), []byte("data-four"))
	trx.Put(p, []byte("key-delete-this"), []byte("to be deleted"))
	trx.Put(p, []byte("key-five"), []byte("data-five"))
	trx.Put(p, []byte("key-six"), []byte("data-six"))
	trx.Delete(p, []byte("key-delete-this"))
	trx.Put(p, []byte("key-seven"), []byte("data-seven"))
	trx.Put(p, []byte("key-one"), []byte("data-one(NEW)")) // duplicate

	err = trx.Commit()
	if nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}

	// ensure we get all of the pool in key order
	cursor := p.NewFetchCursor()
	data, err := cursor.Fetch(20)
	if nil != err {
		t.Fatalf("Error on Fetch: %v", err)
	}
	if len(data) != len(expectedElements) {
		t.Errorf("Length mismatch, got: %d  expected: %d", len(data), len(expectedElements))
	}
	for i, a := range data {
		if i >= len(expectedElements) {
			t.Errorf("%d: Excess, got: '%s:%s'  expected: Nothing", i, a.Key, a.Value)
		} else if !bytes.Equal(expectedElements[i].Key, a.Key) || !bytes.Equal(expectedElements[i].Value, a.Value) {
			t.Errorf("%d: Mismatch, got: '%s:%s'  expected: '%s:%s'", i,
				a.Key, a.Value,
				expectedElements[i].Key, expectedElements[i].Value)
		}
	}

	// check key exists
	if !p.Has([]byte("key-two")) {
		t.Errorf("not found: %q", "key-two")
	}

	// retrieve a key
	d2 := p.Get([]byte("key-two"))
	if string(d2) != "data-two" {
		t.Errorf("Mismatch on Get, got: '%s'  expected: '%s'", d2, "data-two")
	}

	// check that key does not exist
	if p.Has(nonExistantKey) {
		t.Errorf("unexpectedly found: %q", nonExistantKey)
	}

	// retrieve a key not in the pool
	dn := p.Get(nonExistantKey)
	if nil != dn {
		t.Errorf("Unexpected data on Get, got: '%s'  expected: nil", dn)
	}
}

// a batch must not be visible after abort
func TestTransactionAbort(t *testing.T) {
	store := memoryStore(t)
	defer store.Finalise()

	p := store.Allowances

	trx, err := store.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}

	trx.Put(p, []byte("pending"), []byte("pending-data"))

	// pending write is readable inside the transaction
	d := trx.Get(p, []byte("pending"))
	if !bytes.Equal([]byte("pending-data"), d) {
		t.Errorf("pending read mismatch, got: '%s'", d)
	}

	trx.Abort()

	if p.Has([]byte("pending")) {
		t.Errorf("aborted write was committed")
	}

	// the batch writer must be claimable again
	trx, err = store.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin after abort error: %s", err)
	}
	trx.Abort()
}

// only one transaction may be outstanding
func TestTransactionExclusion(t *testing.T) {
	store := memoryStore(t)
	defer store.Finalise()

	trx, err := store.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}

	_, err = store.NewDBTransaction()
	if nil == err {
		t.Fatalf("second transaction begin unexpectedly succeeded")
	}

	trx.Abort()

	trx, err = store.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin after abort error: %s", err)
	}
	trx.Abort()
}

// delete inside a batch hides the committed value
func TestTransactionDelete(t *testing.T) {
	store := memoryStore(t)
	defer store.Finalise()

	p := store.Balances

	trx, err := store.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	trx.Put(p, []byte("gone"), []byte("soon"))
	err = trx.Commit()
	if nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}

	trx, err = store.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	trx.Delete(p, []byte("gone"))

	if trx.Has(p, []byte("gone")) {
		t.Errorf("deleted key still visible inside transaction")
	}

	err = trx.Commit()
	if nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}

	if p.Has([]byte("gone")) {
		t.Errorf("deleted key still visible after commit")
	}
}

// pools with different prefixes must not interfere
func TestPoolIsolation(t *testing.T) {
	store := memoryStore(t)
	defer store.Finalise()

	trx, err := store.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	trx.Put(store.Balances, []byte("shared-key"), []byte("balance"))
	trx.Put(store.Allowances, []byte("shared-key"), []byte("allowance"))
	err = trx.Commit()
	if nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}

	if d := store.Balances.Get([]byte("shared-key")); !bytes.Equal([]byte("balance"), d) {
		t.Errorf("balance pool mismatch, got: '%s'", d)
	}
	if d := store.Allowances.Get([]byte("shared-key")); !bytes.Equal([]byte("allowance"), d) {
		t.Errorf("allowance pool mismatch, got: '%s'", d)
	}

	if e, found := store.Balances.LastElement(); !found || !bytes.Equal([]byte("shared-key"), e.Key) {
		t.Errorf("last element mismatch, got: '%s' found: %v", e.Key, found)
	}
}

// check that restarting a file backed store keeps data
func TestPersistence(t *testing.T) {
	store, err := storage.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	trx, err := store.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	trx.Put(store.Transactions, []byte("record"), []byte("payload"))
	err = trx.Commit()
	if nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}

	store.Finalise()

	store, err = storage.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("storage reopen error: %s", err)
	}
	defer store.Finalise()

	value := store.Transactions.Get([]byte("record"))
	if !bytes.Equal([]byte("payload"), value) {
		t.Errorf("record mismatch, got: '%s'  expected: '%s'", value, "payload")
	}
}

// a delete pending in the batch must hide the committed value from
// reads issued inside the same batch
func TestBatchDeleteMasksCommittedValue(t *testing.T) {
	store := memoryStore(t)
	defer store.Finalise()

	trx, err := store.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	trx.Put(store.Balances, []byte("acc"), []byte("100"))
	err = trx.Commit()
	if nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}

	trx, err = store.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	trx.Delete(store.Balances, []byte("acc"))

	if d := trx.Get(store.Balances, []byte("acc")); nil != d {
		t.Errorf("deleted key still readable in batch, got: '%s'", d)
	}
	if trx.Has(store.Balances, []byte("acc")) {
		t.Errorf("deleted key still present in batch")
	}

	// a value written after the delete is visible again
	trx.Put(store.Balances, []byte("acc"), []byte("25"))
	if d := trx.Get(store.Balances, []byte("acc")); !bytes.Equal([]byte("25"), d) {
		t.Errorf("rewritten key mismatch, got: '%s'", d)
	}

	trx.Abort()

	// the abort discards the delete
	if d := store.Balances.Get([]byte("acc")); !bytes.Equal([]byte("100"), d) {
		t.Errorf("aborted delete lost the committed value, got: '%s'", d)
	}
}
