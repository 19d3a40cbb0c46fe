// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/amount"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/util"
)

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//
//	mint, ok := result.(*transactionrecord.MintData)
//
// or:
//
//	switch tx := result.(type) {
//	case *transactionrecord.MintData:
func (record Packed) Unpack() (t Transaction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.CannotDecodeRecord
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.CannotDecodeRecord
	}

	switch TagType(recordType) {

	case MintTag:
		to, n, err := unpackAccount(record, n)
		if nil != err {
			return nil, 0, err
		}
		amt, n, err := unpackAmount(record, n)
		if nil != err {
			return nil, 0, err
		}
		memo, n, err := unpackBytes(record, n)
		if nil != err {
			return nil, 0, err
		}
		timestamp, n, err := unpackUint64(record, n)
		if nil != err {
			return nil, 0, err
		}
		r := &MintData{
			To:        to,
			Amount:    amt,
			Memo:      memo,
			Timestamp: timestamp,
		}
		return r, n, nil

	case BurnTag:
		from, n, err := unpackAccount(record, n)
		if nil != err {
			return nil, 0, err
		}
		spender, n, err := unpackOptionalAccount(record, n)
		if nil != err {
			return nil, 0, err
		}
		amt, n, err := unpackAmount(record, n)
		if nil != err {
			return nil, 0, err
		}
		memo, n, err := unpackBytes(record, n)
		if nil != err {
			return nil, 0, err
		}
		timestamp, n, err := unpackUint64(record, n)
		if nil != err {
			return nil, 0, err
		}
		r := &BurnData{
			From:      from,
			Spender:   spender,
			Amount:    amt,
			Memo:      memo,
			Timestamp: timestamp,
		}
		return r, n, nil

	case TransferTag:
		from, n, err := unpackAccount(record, n)
		if nil != err {
			return nil, 0, err
		}
		to, n, err := unpackAccount(record, n)
		if nil != err {
			return nil, 0, err
		}
		spender, n, err := unpackOptionalAccount(record, n)
		if nil != err {
			return nil, 0, err
		}
		amt, n, err := unpackAmount(record, n)
		if nil != err {
			return nil, 0, err
		}
		fee, n, err := unpackOptionalAmount(record, n)
		if nil != err {
			return nil, 0, err
		}
		memo, n, err := unpackBytes(record, n)
		if nil != err {
			return nil, 0, err
		}
		timestamp, n, err := unpackUint64(record, n)
		if nil != err {
			return nil, 0, err
		}
		r := &TransferData{
			From:      from,
			To:        to,
			Spender:   spender,
			Amount:    amt,
			Fee:       fee,
			Memo:      memo,
			Timestamp: timestamp,
		}
		return r, n, nil

	case ApproveTag:
		from, n, err := unpackAccount(record, n)
		if nil != err {
			return nil, 0, err
		}
		spender, n, err := unpackAccount(record, n)
		if nil != err {
			return nil, 0, err
		}
		amt, n, err := unpackAmount(record, n)
		if nil != err {
			return nil, 0, err
		}
		expected, n, err := unpackOptionalAmount(record, n)
		if nil != err {
			return nil, 0, err
		}
		expiresAt, n, err := unpackOptionalUint64(record, n)
		if nil != err {
			return nil, 0, err
		}
		fee, n, err := unpackOptionalAmount(record, n)
		if nil != err {
			return nil, 0, err
		}
		memo, n, err := unpackBytes(record, n)
		if nil != err {
			return nil, 0, err
		}
		timestamp, n, err := unpackUint64(record, n)
		if nil != err {
			return nil, 0, err
		}
		r := &ApproveData{
			From:              from,
			Spender:           spender,
			Amount:            amt,
			ExpectedAllowance: expected,
			ExpiresAt:         expiresAt,
			Fee:               fee,
			Memo:              memo,
			Timestamp:         timestamp,
		}
		return r, n, nil

	default:
		return nil, 0, fault.CannotDecodeRecord
	}
}

// read a length prefixed account
func unpackAccount(record Packed, n int) (*account.Account, int, error) {
	length, offset := util.ClippedVarint64(record[n:], 1, 8192)
	if 0 == offset {
		return nil, 0, fault.CannotDecodeRecord
	}
	n += offset
	acc, consumed, err := account.AccountFromBytes(record[n : n+length])
	if nil != err {
		return nil, 0, err
	}
	if consumed != length {
		return nil, 0, fault.CannotDecodeRecord
	}
	return acc, n + length, nil
}

// read a presence byte then an account if present
func unpackOptionalAccount(record Packed, n int) (*account.Account, int, error) {
	if n >= len(record) {
		return nil, 0, fault.CannotDecodeRecord
	}
	flag := record[n]
	n += 1
	switch flag {
	case 0:
		return nil, n, nil
	case 1:
		return unpackAccount(record, n)
	default:
		return nil, 0, fault.CannotDecodeRecord
	}
}

// read a length prefixed big endian amount
func unpackAmount(record Packed, n int) (*amount.Amount, int, error) {
	buffer, n, err := unpackBytes(record, n)
	if nil != err {
		return nil, 0, err
	}
	return amount.FromBytes(buffer), n, nil
}

// read a presence byte then an amount if present
func unpackOptionalAmount(record Packed, n int) (*amount.Amount, int, error) {
	if n >= len(record) {
		return nil, 0, fault.CannotDecodeRecord
	}
	flag := record[n]
	n += 1
	switch flag {
	case 0:
		return nil, n, nil
	case 1:
		return unpackAmount(record, n)
	default:
		return nil, 0, fault.CannotDecodeRecord
	}
}

// read a length prefixed byte slice, zero length is allowed
func unpackBytes(record Packed, n int) ([]byte, int, error) {
	length, offset := util.ClippedVarint64(record[n:], 0, 8192)
	if 0 == offset {
		return nil, 0, fault.CannotDecodeRecord
	}
	n += offset
	if n+length > len(record) {
		return nil, 0, fault.CannotDecodeRecord
	}
	if 0 == length {
		return nil, n, nil
	}
	buffer := make([]byte, length)
	copy(buffer, record[n:n+length])
	return buffer, n + length, nil
}

// read a Varint64
func unpackUint64(record Packed, n int) (uint64, int, error) {
	value, length := util.FromVarint64(record[n:])
	if 0 == length {
		return 0, 0, fault.CannotDecodeRecord
	}
	return value, n + length, nil
}

// read a presence byte then a Varint64 if present
func unpackOptionalUint64(record Packed, n int) (uint64, int, error) {
	if n >= len(record) {
		return 0, 0, fault.CannotDecodeRecord
	}
	flag := record[n]
	n += 1
	switch flag {
	case 0:
		return 0, n, nil
	case 1:
		return unpackUint64(record, n)
	default:
		return 0, 0, fault.CannotDecodeRecord
	}
}
