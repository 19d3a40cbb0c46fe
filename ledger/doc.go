// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the fungible token state machine
//
// the ledger owns four durable pools: balances, allowances, the
// append-only transaction log and the token metadata singleton
//
// every state changing operation runs a fixed validation pipeline
// and then one atomic apply step: balances move, allowances change,
// supply is adjusted and exactly one record is appended to the log,
// all inside a single storage batch
//
// the ledger is single-writer: a write lock is held over the whole
// validate and apply sequence so a second debit can never validate
// against a balance the first has not yet deducted; queries take the
// read lock and therefore always see a consistent snapshot
package ledger
