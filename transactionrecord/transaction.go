// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/amount"
	"github.com/bitmark-inc/ledgerd/util"
)

// TagType - type code for transactions
type TagType uint64

// enumerate the possible transaction record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	MintTag     = TagType(iota) // supply created
	BurnTag     = TagType(iota) // supply destroyed
	TransferTag = TagType(iota) // movement between accounts
	ApproveTag  = TagType(iota) // delegation to a spender

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Transaction - generic transaction interface
type Transaction interface {
	Pack() (Packed, error)
}

// byte sizes for various fields
const (
	MaximumMemoLength = 32
)

// MintData - the unpacked Mint structure
type MintData struct {
	To        *account.Account `json:"to"`                // receiving account
	Amount    *amount.Amount   `json:"amount"`            // number as string
	Memo      []byte           `json:"memo,omitempty"`    // up to 32 bytes
	Timestamp uint64           `json:"timestamp,string"`  // ns since epoch, engine assigned
}

// BurnData - the unpacked Burn structure
type BurnData struct {
	From      *account.Account `json:"from"`              // debited account
	Spender   *account.Account `json:"spender,omitempty"` // optional delegated burner
	Amount    *amount.Amount   `json:"amount"`            // number as string
	Memo      []byte           `json:"memo,omitempty"`    // up to 32 bytes
	Timestamp uint64           `json:"timestamp,string"`  // ns since epoch, engine assigned
}

// TransferData - the unpacked Transfer structure
type TransferData struct {
	From      *account.Account `json:"from"`              // debited account
	To        *account.Account `json:"to"`                // receiving account
	Spender   *account.Account `json:"spender,omitempty"` // optional delegated spender
	Amount    *amount.Amount   `json:"amount"`            // number as string
	Fee       *amount.Amount   `json:"fee,omitempty"`     // optional charged fee
	Memo      []byte           `json:"memo,omitempty"`    // up to 32 bytes
	Timestamp uint64           `json:"timestamp,string"`  // ns since epoch, engine assigned
}

// ApproveData - the unpacked Approve structure
type ApproveData struct {
	From              *account.Account `json:"from"`                        // owning account
	Spender           *account.Account `json:"spender"`                     // delegated spender
	Amount            *amount.Amount   `json:"amount"`                      // number as string
	ExpectedAllowance *amount.Amount   `json:"expectedAllowance,omitempty"` // optional compare-and-swap guard
	ExpiresAt         uint64           `json:"expiresAt,string,omitempty"`  // ns since epoch, zero if none
	Fee               *amount.Amount   `json:"fee,omitempty"`               // optional charged fee
	Memo              []byte           `json:"memo,omitempty"`              // up to 32 bytes
	Timestamp         uint64           `json:"timestamp,string"`            // ns since epoch, engine assigned
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}

// RecordName - returns the name of a transaction record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *MintData, MintData:
		return "Mint", true

	case *BurnData, BurnData:
		return "Burn", true

	case *TransferData, TransferData:
		return "Transfer", true

	case *ApproveData, ApproveData:
		return "Approve", true

	default:
		return "*unknown*", false
	}
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
