// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	ldbopt "github.com/syndtr/goleveldb/leveldb/opt"
	ldbstorage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/logger"
)

// Store - the set of pools over one ledger database
//
// all ledger state lives here; a Store is safe for concurrent reads
// but writes must be serialised by the caller through a Transaction
type Store struct {
	Balances     *PoolHandle // B ++ account          -> amount
	Allowances   *PoolHandle // A ++ owner ++ spender -> allowance
	Transactions *PoolHandle // T ++ index            -> packed record
	Metadata     *PoolHandle // M ++ "metadata"       -> packed metadata

	db     *leveldb.DB
	access Access
	trx    Transaction
	log    *logger.L
}

// pool prefix tags
const (
	balancesPrefix     = 'B'
	allowancesPrefix   = 'A'
	transactionsPrefix = 'T'
	metadataPrefix     = 'M'
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// Initialise - open up the database connection and attach the pools
//
// this must be called before any pool is accessed
func Initialise(database string) (*Store, error) {

	db, version, err := getDB(database + "-ledger.leveldb")
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		db.Close()
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version {
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	}

	return attachPools(db), nil
}

// InitialiseMemory - open a memory-backed store
//
// for tests only; nothing is persisted
func InitialiseMemory() (*Store, error) {
	db, err := leveldb.Open(ldbstorage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return attachPools(db), nil
}

func attachPools(db *leveldb.DB) *Store {
	cache := newCache()
	access := newDA(db, cache)

	store := &Store{
		db:     db,
		access: access,
		trx:    newTransaction(access),
		log:    logger.New("storage"),
	}
	store.Balances = newPool(balancesPrefix, access)
	store.Allowances = newPool(allowancesPrefix, access)
	store.Transactions = newPool(transactionsPrefix, access)
	store.Metadata = newPool(metadataPrefix, access)
	return store
}

func newPool(prefix byte, access Access) *PoolHandle {
	limit := []byte(nil)
	if prefix < 255 {
		limit = []byte{prefix + 1}
	}
	return &PoolHandle{
		prefix: prefix,
		limit:  limit,
		access: access,
	}
}

// Finalise - close the database connection
func (store *Store) Finalise() {
	if nil == store || nil == store.db {
		return
	}
	store.db.Close()
	store.db = nil
}

// NewDBTransaction - claim the batch writer for this store
//
// only one transaction can be outstanding; a second claim fails
// until Commit or Abort
func (store *Store) NewDBTransaction() (Transaction, error) {
	err := store.trx.Begin()
	if nil != err {
		return nil, fault.TransactionInUse
	}
	return store.trx, nil
}

// return:
//
//	database handle
//	version number
func getDB(name string) (*leveldb.DB, int, error) {
	opt := &ldbopt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
