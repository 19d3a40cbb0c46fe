// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - the ledger transaction records
//
// a transaction record is a tagged variant packed to a compact binary
// form for storage in the transaction log:
//
//	Mint     - supply created into an account by the minting account
//	Burn     - supply destroyed from an account
//	Transfer - movement between accounts, directly or by a spender
//	Approve  - delegation of spending rights to a spender
//
// the packed form is Varint64(tag) followed by the fields in struct
// order; variable length fields are prefixed by a Varint64 byte
// count and optional fields by a single presence byte
package transactionrecord
