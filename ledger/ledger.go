// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/amount"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/storage"
)

// TxWindow - maximum allowed age of a caller supplied creation
// timestamp in nanoseconds
const TxWindow = uint64(24 * time.Hour)

// Ledger - the ledger context
//
// construct once with Initialise and pass by reference to every
// operation handler
type Ledger struct {
	sync.RWMutex

	store *storage.Store
	log   *logger.L
	token *TokenMetadata

	// ledger time in nanoseconds, replaceable in tests
	now func() uint64
}

// Initialise - attach a ledger to its store
//
// the metadata singleton is loaded from the store when present,
// otherwise it is created from the supplied configuration and
// written back
func Initialise(store *storage.Store, config TokenConfiguration) (*Ledger, error) {
	if nil == store {
		return nil, fault.NotInitialised
	}

	l := &Ledger{
		store: store,
		log:   logger.New("ledger"),
		now:   func() uint64 { return uint64(time.Now().UnixNano()) },
	}

	token, err := loadTokenMetadata(store)
	if nil != err {
		return nil, err
	}
	if nil == token {
		token = newTokenMetadata(config)
		trx, err := store.NewDBTransaction()
		if nil != err {
			return nil, err
		}
		trx.Put(store.Metadata, metadataKey, token.pack())
		err = trx.Commit()
		if nil != err {
			return nil, err
		}
	}
	l.token = token

	l.log.Infof("token: %q (%s)  decimals: %d  fee: %s  supply: %s",
		token.Name, token.Symbol, token.Decimals, token.Fee, token.TotalSupply)

	return l, nil
}

// Finalise - detach the ledger
func (l *Ledger) Finalise() {
	l.Lock()
	l.store = nil
	l.Unlock()
}

// Name - the token name
func (l *Ledger) Name() string {
	l.RLock()
	defer l.RUnlock()
	return l.token.Name
}

// Symbol - the token symbol
func (l *Ledger) Symbol() string {
	l.RLock()
	defer l.RUnlock()
	return l.token.Symbol
}

// Decimals - the token decimal precision
func (l *Ledger) Decimals() uint8 {
	l.RLock()
	defer l.RUnlock()
	return l.token.Decimals
}

// Fee - the configured transfer fee
func (l *Ledger) Fee() *amount.Amount {
	l.RLock()
	defer l.RUnlock()
	return l.token.Fee.Copy()
}

// TotalSupply - all mints minus all burns so far
func (l *Ledger) TotalSupply() *amount.Amount {
	l.RLock()
	defer l.RUnlock()
	return l.token.TotalSupply.Copy()
}

// MintingAccount - the distinguished supply authority, nil when not
// yet configured
func (l *Ledger) MintingAccount() *account.Account {
	l.RLock()
	defer l.RUnlock()
	return l.token.MintingAccount
}

// write the cached metadata singleton into the current batch
func (l *Ledger) storeToken(trx storage.Transaction) {
	trx.Put(l.store.Metadata, metadataKey, l.token.pack())
}
