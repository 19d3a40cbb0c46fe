// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/amount"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/ledgerd/util"
)

// Allowance - a delegated spend permission
//
// absence of an entry is the same as {0, no expiry}
type Allowance struct {
	Amount    *amount.Amount `json:"amount"`
	ExpiresAt uint64         `json:"expiresAt,string,omitempty"` // ns since epoch, zero if none
}

// AllowanceOf - the allowance granted by owner to spender
func (l *Ledger) AllowanceOf(owner *account.Account, spender *account.Account) Allowance {
	l.RLock()
	defer l.RUnlock()
	return l.allowance(owner, spender)
}

// composite key: owner account bytes then spender account bytes
//
// the account byte form is varint length prefixed internally so the
// concatenation cannot be ambiguous
func allowanceKey(owner *account.Account, spender *account.Account) []byte {
	ownerBytes := owner.Bytes()
	key := make([]byte, 0, len(ownerBytes)+32)
	key = append(key, ownerBytes...)
	return append(key, spender.Bytes()...)
}

// read an allowance, the caller must hold a lock
func (l *Ledger) allowance(owner *account.Account, spender *account.Account) Allowance {
	buffer := l.store.Allowances.Get(allowanceKey(owner, spender))
	if nil == buffer {
		return Allowance{Amount: amount.Zero()}
	}
	allowance, err := unpackAllowance(buffer)
	if nil != err {
		// corruption is fatal for this access
		logger.Panicf("allowance decode error: %s", err)
	}
	return allowance
}

// replace an allowance entry inside the current batch
//
// a zero allowance is removed rather than retained
func (l *Ledger) setAllowance(trx storage.Transaction, owner *account.Account, spender *account.Account, allowance Allowance) {
	key := allowanceKey(owner, spender)
	if allowance.Amount.IsZero() {
		trx.Delete(l.store.Allowances, key)
	} else {
		trx.Put(l.store.Allowances, key, packAllowance(allowance))
	}
}

// pack an allowance: length prefixed amount then a presence byte
// before the expiry
func packAllowance(allowance Allowance) []byte {
	message := appendBytes(nil, allowance.Amount.Bytes())
	if 0 == allowance.ExpiresAt {
		return append(message, 0)
	}
	message = append(message, 1)
	return append(message, util.ToVarint64(allowance.ExpiresAt)...)
}

// unpack an allowance from its byte form
func unpackAllowance(buffer []byte) (Allowance, error) {
	amountBytes, n, err := nextBytes(buffer, 0)
	if nil != err {
		return Allowance{}, fault.CannotDecodeAllowance
	}
	allowance := Allowance{
		Amount: amount.FromBytes(amountBytes),
	}
	if n >= len(buffer) {
		return Allowance{}, fault.CannotDecodeAllowance
	}
	switch buffer[n] {
	case 0:
	case 1:
		expiresAt, length := util.FromVarint64(buffer[n+1:])
		if 0 == length {
			return Allowance{}, fault.CannotDecodeAllowance
		}
		allowance.ExpiresAt = expiresAt
	default:
		return Allowance{}, fault.CannotDecodeAllowance
	}
	return allowance, nil
}
