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
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// Mint - create new supply into an account
//
// restricted to the owner of the minting account; carries no fee and
// no caller supplied creation timestamp, but still stamps the ledger
// time onto the record
func (l *Ledger) Mint(caller *account.Identity, to *account.Account, a *amount.Amount, memo []byte) (uint64, error) {
	if nil == caller || nil == to || nil == a {
		return 0, fault.MissingParameters
	}
	if len(memo) > transactionrecord.MaximumMemoLength {
		return 0, fault.MemoTooLong
	}

	l.Lock()
	defer l.Unlock()

	if nil == l.token.MintingAccount || !l.token.MintingAccount.IsOwnedBy(caller) {
		return 0, fault.NotMintingAccount
	}

	now := l.now()

	trx, err := l.store.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	l.credit(trx, to, a)
	l.token.TotalSupply = l.token.TotalSupply.Add(a)
	l.storeToken(trx)

	index := l.appendRecord(trx, &transactionrecord.MintData{
		To:        to,
		Amount:    a.Copy(),
		Memo:      memo,
		Timestamp: now,
	})
	l.commit(trx)
	return index, nil
}

// Burn - destroy supply from an account
//
// restricted to the owner of the from account; no fee is charged
func (l *Ledger) Burn(caller *account.Identity, from *account.Account, a *amount.Amount, memo []byte) (uint64, error) {
	if nil == caller || nil == from || nil == a {
		return 0, fault.MissingParameters
	}
	if len(memo) > transactionrecord.MaximumMemoLength {
		return 0, fault.MemoTooLong
	}

	l.Lock()
	defer l.Unlock()

	if !from.IsOwnedBy(caller) {
		return 0, fault.NotOwnerAccount
	}

	balance := l.balance(from)
	if balance.Cmp(a) < 0 {
		return 0, InsufficientFundsError{Balance: balance}
	}

	now := l.now()

	trx, err := l.store.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	l.debit(trx, from, a)

	supply, err := l.token.TotalSupply.Sub(a)
	logger.PanicIfError("ledger.Burn", err)
	l.token.TotalSupply = supply
	l.storeToken(trx)

	index := l.appendRecord(trx, &transactionrecord.BurnData{
		From:      from,
		Amount:    a.Copy(),
		Memo:      memo,
		Timestamp: now,
	})
	l.commit(trx)
	return index, nil
}

// UpdateMintingAccount - replace the minting authority
//
// restricted to the owner of the current minting account; the first
// call on a fresh ledger is accepted from anyone so the authority
// can be bootstrapped
func (l *Ledger) UpdateMintingAccount(caller *account.Identity, newAccount *account.Account) error {
	if nil == caller || nil == newAccount {
		return fault.MissingParameters
	}

	l.Lock()
	defer l.Unlock()

	if nil != l.token.MintingAccount && !l.token.MintingAccount.IsOwnedBy(caller) {
		return fault.NotAuthorised
	}

	trx, err := l.store.NewDBTransaction()
	if nil != err {
		return err
	}

	l.token.MintingAccount = newAccount
	l.storeToken(trx)
	l.commit(trx)

	l.log.Infof("minting account: %s", newAccount)
	return nil
}
