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

// Pack - pack Mint
//
// Pack Varint64(tag) followed by fields in order as struct above
func (mint *MintData) Pack() (Packed, error) {
	if nil == mint.To || nil == mint.Amount {
		return nil, fault.MissingParameters
	}
	if len(mint.Memo) > MaximumMemoLength {
		return nil, fault.MemoTooLong
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(MintTag))
	message = appendAccount(message, mint.To)
	message = appendAmount(message, mint.Amount)
	message = appendBytes(message, mint.Memo)
	message = appendUint64(message, mint.Timestamp)
	return message, nil
}

// Pack - pack Burn
//
// Pack Varint64(tag) followed by fields in order as struct above
func (burn *BurnData) Pack() (Packed, error) {
	if nil == burn.From || nil == burn.Amount {
		return nil, fault.MissingParameters
	}
	if len(burn.Memo) > MaximumMemoLength {
		return nil, fault.MemoTooLong
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(BurnTag))
	message = appendAccount(message, burn.From)
	message = appendOptionalAccount(message, burn.Spender)
	message = appendAmount(message, burn.Amount)
	message = appendBytes(message, burn.Memo)
	message = appendUint64(message, burn.Timestamp)
	return message, nil
}

// Pack - pack Transfer
//
// Pack Varint64(tag) followed by fields in order as struct above
func (transfer *TransferData) Pack() (Packed, error) {
	if nil == transfer.From || nil == transfer.To || nil == transfer.Amount {
		return nil, fault.MissingParameters
	}
	if len(transfer.Memo) > MaximumMemoLength {
		return nil, fault.MemoTooLong
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(TransferTag))
	message = appendAccount(message, transfer.From)
	message = appendAccount(message, transfer.To)
	message = appendOptionalAccount(message, transfer.Spender)
	message = appendAmount(message, transfer.Amount)
	message = appendOptionalAmount(message, transfer.Fee)
	message = appendBytes(message, transfer.Memo)
	message = appendUint64(message, transfer.Timestamp)
	return message, nil
}

// Pack - pack Approve
//
// Pack Varint64(tag) followed by fields in order as struct above
func (approve *ApproveData) Pack() (Packed, error) {
	if nil == approve.From || nil == approve.Spender || nil == approve.Amount {
		return nil, fault.MissingParameters
	}
	if len(approve.Memo) > MaximumMemoLength {
		return nil, fault.MemoTooLong
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(ApproveTag))
	message = appendAccount(message, approve.From)
	message = appendAccount(message, approve.Spender)
	message = appendAmount(message, approve.Amount)
	message = appendOptionalAmount(message, approve.ExpectedAllowance)
	message = appendOptionalUint64(message, approve.ExpiresAt)
	message = appendOptionalAmount(message, approve.Fee)
	message = appendBytes(message, approve.Memo)
	message = appendUint64(message, approve.Timestamp)
	return message, nil
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, acc *account.Account) Packed {
	data := acc.Bytes()
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append an optional account to a buffer
//
// a single presence byte followed by the account if present
func appendOptionalAccount(buffer Packed, acc *account.Account) Packed {
	if nil == acc {
		return append(buffer, 0)
	}
	buffer = append(buffer, 1)
	return appendAccount(buffer, acc)
}

// append an amount to a buffer
//
// the big endian amount bytes prefixed by Varint64(length)
func appendAmount(buffer Packed, a *amount.Amount) Packed {
	return appendBytes(buffer, a.Bytes())
}

// append an optional amount to a buffer
//
// a single presence byte followed by the amount if present
func appendOptionalAmount(buffer Packed, a *amount.Amount) Packed {
	if nil == a {
		return append(buffer, 0)
	}
	buffer = append(buffer, 1)
	return appendAmount(buffer, a)
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := util.ToVarint64(value)
	buffer = append(buffer, valueBytes...)
	return buffer
}

// append an optional Varint64 to buffer
//
// a single presence byte followed by the value if non-zero
func appendOptionalUint64(buffer Packed, value uint64) Packed {
	if 0 == value {
		return append(buffer, 0)
	}
	buffer = append(buffer, 1)
	return appendUint64(buffer, value)
}
