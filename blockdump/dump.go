// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdump

import (
	"encoding/hex"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/amount"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// Blob - raw bytes rendered as hex in JSON
type Blob []byte

// MarshalText - convert a blob to its hex JSON form
func (blob Blob) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(blob))
	b := make([]byte, size)
	hex.Encode(b, blob)
	return b, nil
}

// UnmarshalText - convert a blob from its hex JSON form
func (blob *Blob) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*blob = make([]byte, size)
	_, err := hex.Decode(*blob, s)
	return err
}

// AccountValue - an account as an ordered pair of owner bytes and
// optional subaccount bytes
type AccountValue []Blob

// BlockData - the canonical tagged map form of one record
//
// the op tag is one of "mint", "burn", "xfer" or "approve"; absent
// optional fields drop their key entirely
type BlockData struct {
	Op                string         `json:"op"`
	Ts                uint64         `json:"ts"`
	From              AccountValue   `json:"from,omitempty"`
	To                AccountValue   `json:"to,omitempty"`
	Spender           AccountValue   `json:"spender,omitempty"`
	Amt               *amount.Amount `json:"amt"`
	Fee               *amount.Amount `json:"fee,omitempty"`
	Memo              Blob           `json:"memo,omitempty"`
	ExpectedAllowance *amount.Amount `json:"expected_allowance,omitempty"`
	ExpiresAt         uint64         `json:"expires_at,omitempty"`
}

// Block - one rendered log entry with its index
type Block struct {
	ID    uint64    `json:"id"`
	Block BlockData `json:"block"`
}

// BlocksResult - the export of one log range
//
// ArchivedBlocks is always empty: archival paging is unsupported,
// the field exists for forward compatibility only
type BlocksResult struct {
	LogLength      uint64  `json:"logLength"`
	Blocks         []Block `json:"blocks"`
	ArchivedBlocks []Block `json:"archivedBlocks"`
}

// GetBlocks - render the records for indices in [start, start+count)
//
// out of range start yields an empty block list, not an error; the
// range and the log length are one atomic snapshot
func GetBlocks(l *ledger.Ledger, start uint64, count uint64) (*BlocksResult, error) {
	if nil == l {
		return nil, fault.NotInitialised
	}

	records, logLength := l.RangeRecords(start, count)

	blocks := make([]Block, 0, len(records))
	for _, item := range records {
		data, err := renderRecord(item.Record)
		if nil != err {
			return nil, err
		}
		blocks = append(blocks, Block{
			ID:    item.Index,
			Block: data,
		})
	}

	return &BlocksResult{
		LogLength:      logLength,
		Blocks:         blocks,
		ArchivedBlocks: []Block{},
	}, nil
}

// render one record into its tagged map form
func renderRecord(record transactionrecord.Transaction) (BlockData, error) {
	switch tx := record.(type) {

	case *transactionrecord.MintData:
		return BlockData{
			Op:   "mint",
			Ts:   tx.Timestamp,
			To:   renderAccount(tx.To),
			Amt:  tx.Amount,
			Memo: tx.Memo,
		}, nil

	case *transactionrecord.BurnData:
		return BlockData{
			Op:      "burn",
			Ts:      tx.Timestamp,
			From:    renderAccount(tx.From),
			Spender: renderAccount(tx.Spender),
			Amt:     tx.Amount,
			Memo:    tx.Memo,
		}, nil

	case *transactionrecord.TransferData:
		return BlockData{
			Op:      "xfer",
			Ts:      tx.Timestamp,
			From:    renderAccount(tx.From),
			To:      renderAccount(tx.To),
			Spender: renderAccount(tx.Spender),
			Amt:     tx.Amount,
			Fee:     tx.Fee,
			Memo:    tx.Memo,
		}, nil

	case *transactionrecord.ApproveData:
		return BlockData{
			Op:                "approve",
			Ts:                tx.Timestamp,
			From:              renderAccount(tx.From),
			Spender:           renderAccount(tx.Spender),
			Amt:               tx.Amount,
			ExpectedAllowance: tx.ExpectedAllowance,
			ExpiresAt:         tx.ExpiresAt,
			Fee:               tx.Fee,
			Memo:              tx.Memo,
		}, nil

	default:
		return BlockData{}, fault.CannotDecodeRecord
	}
}

// render an account as (owner bytes, optional subaccount bytes)
func renderAccount(acc *account.Account) AccountValue {
	if nil == acc {
		return nil
	}
	value := AccountValue{Blob(acc.Owner.Bytes())}
	if 0 != len(acc.Subaccount) {
		value = append(value, Blob(acc.Subaccount))
	}
	return value
}
