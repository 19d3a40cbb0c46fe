// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package amount - arbitrary precision unsigned token quantities
//
// all ledger arithmetic must go through this package so that
// subtraction below zero is reported as an error and can never wrap
package amount

import (
	"math/big"

	"github.com/bitmark-inc/ledgerd/fault"
)

// Amount - a non-negative arbitrary precision integer
//
// the zero value is usable and represents zero tokens
type Amount struct {
	value big.Int
}

// Zero - a new zero amount
func Zero() *Amount {
	return &Amount{}
}

// FromUint64 - create an amount from an unsigned integer
func FromUint64(n uint64) *Amount {
	a := &Amount{}
	a.value.SetUint64(n)
	return a
}

// FromBytes - create an amount from big endian bytes
//
// an empty slice is zero, mirrors Bytes()
func FromBytes(buffer []byte) *Amount {
	a := &Amount{}
	a.value.SetBytes(buffer)
	return a
}

// FromString - create an amount from a decimal string
func FromString(s string) (*Amount, error) {
	a := &Amount{}
	_, ok := a.value.SetString(s, 10)
	if !ok {
		return nil, fault.CannotDecodeAmount
	}
	if a.value.Sign() < 0 {
		return nil, fault.AmountNegative
	}
	return a, nil
}

// Bytes - the amount as big endian bytes, empty for zero
func (a *Amount) Bytes() []byte {
	return a.value.Bytes()
}

// String - the amount as a decimal string
func (a *Amount) String() string {
	return a.value.String()
}

// Add - sum of two amounts as a new amount
func (a *Amount) Add(b *Amount) *Amount {
	sum := &Amount{}
	sum.value.Add(&a.value, &b.value)
	return sum
}

// Sub - difference of two amounts as a new amount
//
// checked: underflow is an error, the operands are unchanged
func (a *Amount) Sub(b *Amount) (*Amount, error) {
	if a.value.Cmp(&b.value) < 0 {
		return nil, fault.AmountUnderflow
	}
	diff := &Amount{}
	diff.value.Sub(&a.value, &b.value)
	return diff, nil
}

// Cmp - compare two amounts
//
//	-1 if a <  b
//	 0 if a == b
//	+1 if a >  b
func (a *Amount) Cmp(b *Amount) int {
	return a.value.Cmp(&b.value)
}

// Equal - check two amounts are the same
func (a *Amount) Equal(b *Amount) bool {
	return 0 == a.value.Cmp(&b.value)
}

// IsZero - check for a zero amount
func (a *Amount) IsZero() bool {
	return 0 == a.value.Sign()
}

// Copy - an independent copy of the amount
func (a *Amount) Copy() *Amount {
	c := &Amount{}
	c.value.Set(&a.value)
	return c
}

// MarshalText - convert an amount to its decimal JSON form
func (a *Amount) MarshalText() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalText - convert a decimal JSON form to an amount
func (a *Amount) UnmarshalText(s []byte) error {
	parsed, err := FromString(string(s))
	if nil != err {
		return err
	}
	a.value.Set(&parsed.value)
	return nil
}
