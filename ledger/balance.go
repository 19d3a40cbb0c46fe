// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/amount"
	"github.com/bitmark-inc/ledgerd/storage"
)

// BalanceOf - the balance of an account, zero when absent
func (l *Ledger) BalanceOf(acc *account.Account) *amount.Amount {
	l.RLock()
	defer l.RUnlock()
	return l.balance(acc)
}

// read a balance, the caller must hold a lock
func (l *Ledger) balance(acc *account.Account) *amount.Amount {
	buffer := l.store.Balances.Get(acc.Bytes())
	if nil == buffer {
		return amount.Zero()
	}
	return amount.FromBytes(buffer)
}

// credit an account inside the current batch
func (l *Ledger) credit(trx storage.Transaction, acc *account.Account, a *amount.Amount) {
	balance := l.balance(acc)
	trx.Put(l.store.Balances, acc.Bytes(), balance.Add(a).Bytes())
}

// debit an account inside the current batch
//
// the balance entry is removed when it reaches exactly zero; the
// transfer engine pre-validates so an underflow here is fatal
func (l *Ledger) debit(trx storage.Transaction, acc *account.Account, a *amount.Amount) {
	balance, err := l.balance(acc).Sub(a)
	logger.PanicIfError("ledger.debit", err)
	if balance.IsZero() {
		trx.Delete(l.store.Balances, acc.Bytes())
	} else {
		trx.Put(l.store.Balances, acc.Bytes(), balance.Bytes())
	}
}
