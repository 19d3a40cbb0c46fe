// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"fmt"

	"github.com/bitmark-inc/ledgerd/amount"
)

// validation failures carrying a live ledger value back to the
// caller; failures without parameters are fault constants

// BadFeeError - caller supplied fee disagrees with the configured fee
type BadFeeError struct {
	ExpectedFee *amount.Amount
}

func (e BadFeeError) Error() string {
	return fmt.Sprintf("bad fee: expected fee: %s", e.ExpectedFee)
}

// InsufficientFundsError - payer balance below amount plus fee
type InsufficientFundsError struct {
	Balance *amount.Amount
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance: %s", e.Balance)
}

// InsufficientAllowanceError - allowance expired or below the
// requested transfer amount
type InsufficientAllowanceError struct {
	Allowance *amount.Amount
}

func (e InsufficientAllowanceError) Error() string {
	return fmt.Sprintf("insufficient allowance: allowance: %s", e.Allowance)
}

// AllowanceChangedError - the live allowance differs from the
// caller's expected allowance
type AllowanceChangedError struct {
	CurrentAllowance *amount.Amount
}

func (e AllowanceChangedError) Error() string {
	return fmt.Sprintf("allowance changed: current allowance: %s", e.CurrentAllowance)
}

// ExpiredError - the requested expiry is already in the past
type ExpiredError struct {
	LedgerTime uint64
}

func (e ExpiredError) Error() string {
	return fmt.Sprintf("expired: ledger time: %d", e.LedgerTime)
}

// CreatedInFutureError - caller supplied creation time is ahead of
// the ledger clock
type CreatedInFutureError struct {
	LedgerTime uint64
}

func (e CreatedInFutureError) Error() string {
	return fmt.Sprintf("created in future: ledger time: %d", e.LedgerTime)
}
