// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/amount"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/ledgerd/util"
)

// singleton key inside the metadata pool
var metadataKey = []byte("metadata")

// defaults for unset configuration values
const (
	defaultName     = "Ledger Token"
	defaultSymbol   = "LGR"
	defaultDecimals = 8
	defaultFee      = 10000

	maxNameLength   = 64
	maxSymbolLength = 16
)

// TokenConfiguration - static token parameters fixed at first start
type TokenConfiguration struct {
	Name     string `gluamapper:"name" json:"name"`
	Symbol   string `gluamapper:"symbol" json:"symbol"`
	Decimals uint8  `gluamapper:"decimals" json:"decimals"`
	Fee      string `gluamapper:"fee" json:"fee"`
}

// TokenMetadata - the metadata singleton
//
// static fields come from configuration at first start, the mutable
// fields are maintained incrementally by the transfer engine
type TokenMetadata struct {
	Name           string
	Symbol         string
	Decimals       uint8
	Fee            *amount.Amount
	TotalSupply    *amount.Amount
	MintingAccount *account.Account // nil until configured
}

// MetadataItem - one key/value pair of the fixed metadata listing
type MetadataItem struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// Metadata - the fixed key/value listing of the static token fields
//
// key vocabulary follows the icrc1 ledger convention
func (l *Ledger) Metadata() []MetadataItem {
	l.RLock()
	defer l.RUnlock()
	return []MetadataItem{
		{Key: "icrc1:name", Value: l.token.Name},
		{Key: "icrc1:symbol", Value: l.token.Symbol},
		{Key: "icrc1:decimals", Value: uint64(l.token.Decimals)},
		{Key: "icrc1:fee", Value: l.token.Fee.String()},
	}
}

// build a fresh metadata singleton from configuration
func newTokenMetadata(config TokenConfiguration) *TokenMetadata {
	token := &TokenMetadata{
		Name:        config.Name,
		Symbol:      config.Symbol,
		Decimals:    config.Decimals,
		Fee:         amount.FromUint64(defaultFee),
		TotalSupply: amount.Zero(),
	}
	if "" == token.Name {
		token.Name = defaultName
	}
	if "" == token.Symbol {
		token.Symbol = defaultSymbol
	}
	if 0 == token.Decimals {
		token.Decimals = defaultDecimals
	}
	if "" != config.Fee {
		fee, err := amount.FromString(config.Fee)
		if nil == err {
			token.Fee = fee
		}
	}
	return token
}

// pack the metadata singleton to its byte form
//
// fields in struct order: length prefixed strings and amounts, a
// Varint64 for decimals and a presence byte before the optional
// minting account
func (token *TokenMetadata) pack() []byte {
	message := appendBytes(nil, []byte(token.Name))
	message = appendBytes(message, []byte(token.Symbol))
	message = append(message, util.ToVarint64(uint64(token.Decimals))...)
	message = appendBytes(message, token.Fee.Bytes())
	message = appendBytes(message, token.TotalSupply.Bytes())
	if nil == token.MintingAccount {
		message = append(message, 0)
	} else {
		message = append(message, 1)
		message = appendBytes(message, token.MintingAccount.Bytes())
	}
	return message
}

// unpack a metadata singleton from its byte form
func unpackTokenMetadata(buffer []byte) (*TokenMetadata, error) {
	name, n, err := nextBytes(buffer, 0)
	if nil != err {
		return nil, fault.CannotDecodeMetadata
	}
	symbol, n, err := nextBytes(buffer, n)
	if nil != err {
		return nil, fault.CannotDecodeMetadata
	}
	decimals, length := util.FromVarint64(buffer[n:])
	if 0 == length || decimals > 255 {
		return nil, fault.CannotDecodeMetadata
	}
	n += length
	feeBytes, n, err := nextBytes(buffer, n)
	if nil != err {
		return nil, fault.CannotDecodeMetadata
	}
	supplyBytes, n, err := nextBytes(buffer, n)
	if nil != err {
		return nil, fault.CannotDecodeMetadata
	}

	token := &TokenMetadata{
		Name:        string(name),
		Symbol:      string(symbol),
		Decimals:    uint8(decimals),
		Fee:         amount.FromBytes(feeBytes),
		TotalSupply: amount.FromBytes(supplyBytes),
	}

	if n >= len(buffer) {
		return nil, fault.CannotDecodeMetadata
	}
	switch buffer[n] {
	case 0:
	case 1:
		accountBytes, _, err := nextBytes(buffer, n+1)
		if nil != err {
			return nil, fault.CannotDecodeMetadata
		}
		minting, _, err := account.AccountFromBytes(accountBytes)
		if nil != err {
			return nil, err
		}
		token.MintingAccount = minting
	default:
		return nil, fault.CannotDecodeMetadata
	}
	return token, nil
}

// read the metadata singleton, nil if the store is still empty
func loadTokenMetadata(store *storage.Store) (*TokenMetadata, error) {
	buffer := store.Metadata.Get(metadataKey)
	if nil == buffer {
		return nil, nil
	}
	return unpackTokenMetadata(buffer)
}

// append a length prefixed field
func appendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// read a length prefixed field
func nextBytes(buffer []byte, n int) ([]byte, int, error) {
	length, offset := util.ClippedVarint64(buffer[n:], 0, 8192)
	if 0 == offset {
		return nil, 0, fault.CannotDecodeRecord
	}
	n += offset
	if n+length > len(buffer) {
		return nil, 0, fault.CannotDecodeRecord
	}
	return buffer[n : n+length], n + length, nil
}
