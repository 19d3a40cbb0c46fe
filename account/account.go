// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - balance holders
//
// an Account is an owner identity plus an optional subaccount so that
// one identity can hold several independent balances
package account

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/util"
)

// maximum byte size of a subaccount discriminator
const MaximumSubaccountLength = 32

// Account - the unit of balance ownership
//
// two accounts with the same owner but different subaccounts are
// entirely separate balance holders
type Account struct {
	Owner      *Identity // base58
	Subaccount []byte    // hex
}

// NewAccount - create an account checking the subaccount size
//
// a nil or empty subaccount means the default account of the owner
func NewAccount(owner *Identity, subaccount []byte) (*Account, error) {
	if nil == owner {
		return nil, fault.InvalidItem
	}
	if len(subaccount) > MaximumSubaccountLength {
		return nil, fault.InvalidSubaccountLength
	}
	if 0 == len(subaccount) {
		subaccount = nil
	}
	return &Account{
		Owner:      owner,
		Subaccount: subaccount,
	}, nil
}

// Bytes - pack an account to a unique byte form
//
// layout: Varint64(length of owner bytes) owner bytes
//         Varint64(length of subaccount)  subaccount bytes
// equality and ordering of accounts is bytewise over this form
func (account *Account) Bytes() []byte {
	ownerBytes := account.Owner.Bytes()
	buffer := util.ToVarint64(uint64(len(ownerBytes)))
	buffer = append(buffer, ownerBytes...)
	buffer = append(buffer, util.ToVarint64(uint64(len(account.Subaccount)))...)
	buffer = append(buffer, account.Subaccount...)
	return buffer
}

// AccountFromBytes - unpack an account from its byte form
//
// returns the account and the number of bytes consumed
func AccountFromBytes(buffer []byte) (*Account, int, error) {

	ownerLength, n := util.FromVarint64(buffer)
	if 0 == n || len(buffer) < n+int(ownerLength) {
		return nil, 0, fault.CannotDecodeAccount
	}
	owner, err := IdentityFromBytes(buffer[n : n+int(ownerLength)])
	if nil != err {
		return nil, 0, err
	}
	used := n + int(ownerLength)

	subaccountLength, n := util.FromVarint64(buffer[used:])
	if 0 == n || subaccountLength > MaximumSubaccountLength {
		return nil, 0, fault.CannotDecodeAccount
	}
	used += n
	if len(buffer) < used+int(subaccountLength) {
		return nil, 0, fault.CannotDecodeAccount
	}

	var subaccount []byte
	if 0 != subaccountLength {
		subaccount = make([]byte, subaccountLength)
		copy(subaccount, buffer[used:used+int(subaccountLength)])
	}
	used += int(subaccountLength)

	return &Account{
		Owner:      owner,
		Subaccount: subaccount,
	}, used, nil
}

// Equal - bytewise equality over (owner, subaccount)
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return account == other
	}
	return bytes.Equal(account.Bytes(), other.Bytes())
}

// IsOwnedBy - check the account belongs to an identity
//
// only the owner part is compared, the subaccount is under the sole
// control of its owner
func (account *Account) IsOwnedBy(identity *Identity) bool {
	if nil == account || nil == identity {
		return false
	}
	return bytes.Equal(account.Owner.Bytes(), identity.Bytes())
}

// String - printable form: owner base58, then "." and hex subaccount if present
func (account *Account) String() string {
	if nil == account.Subaccount {
		return account.Owner.String()
	}
	return account.Owner.String() + "." + hex.EncodeToString(account.Subaccount)
}

// MarshalText - convert an account to its one string JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert the one string JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	parts := strings.SplitN(string(s), ".", 2)
	owner, err := IdentityFromBase58(parts[0])
	if nil != err {
		return err
	}
	var subaccount []byte
	if 2 == len(parts) {
		subaccount, err = hex.DecodeString(parts[1])
		if nil != err {
			return fault.CannotDecodeAccount
		}
		if len(subaccount) > MaximumSubaccountLength {
			return fault.InvalidSubaccountLength
		}
	}
	account.Owner = owner
	account.Subaccount = subaccount
	return nil
}
