// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a single prefix byte.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++        = concatenation of byte data
// 3. account   = packed account (length prefixed owner ++ length prefixed subaccount)
// 4. index     = transaction log index as big endian uint64 (8 bytes)
// 5. *others*  = byte values of various length
//
// Balances:
//
//   B ++ account               - balance of one account
//                                data: amount bytes (big endian, empty = zero)
//
// Allowances:
//
//   A ++ owner ++ spender      - delegated spend allowance
//                                data: amount length ++ amount ++ expiry flag ++ [expiry]
//
// Transactions:
//
//   T ++ index                 - packed transaction record
//                                data: transaction record (tag ++ fields)
//
// Metadata:
//
//   M ++ "metadata"            - the singleton token metadata record
//                                data: packed token metadata
package storage
