// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bitmark-inc/ledgerd/amount"
	"github.com/bitmark-inc/ledgerd/fault"
)

// test the amount decimal string conversions
func TestFromString(t *testing.T) {

	testData := []struct {
		s     string
		valid bool
	}{
		{"0", true},
		{"1", true},
		{"1000000", true},
		{"340282366920938463463374607431768211456", true}, // 2^128
		{"-1", false},
		{"", false},
		{"cat", false},
		{"12cat", false},
	}

	for i, item := range testData {
		a, err := amount.FromString(item.s)
		if item.valid {
			if nil != err {
				t.Errorf("%d: FromString(%q) error: %s", i, item.s, err)
			} else if a.String() != item.s {
				t.Errorf("%d: string: %q  expected: %q", i, a.String(), item.s)
			}
		} else if nil == err {
			t.Errorf("%d: FromString(%q) unexpected success", i, item.s)
		}
	}
}

// test byte round trip including values beyond 64 bits
func TestBytes(t *testing.T) {

	testData := []string{
		"0",
		"1",
		"255",
		"256",
		"18446744073709551615", // 2^64-1
		"18446744073709551616", // 2^64
		"340282366920938463463374607431768211455",
	}

	for i, s := range testData {
		a, err := amount.FromString(s)
		if nil != err {
			t.Fatalf("%d: FromString(%q) error: %s", i, s, err)
		}
		b := amount.FromBytes(a.Bytes())
		if !a.Equal(b) {
			t.Errorf("%d: byte round trip: %s  expected: %s", i, b, a)
		}
	}

	if 0 != len(amount.Zero().Bytes()) {
		t.Errorf("zero amount has non-empty bytes")
	}
}

// checked subtraction must error on underflow and leave operands unchanged
func TestCheckedSub(t *testing.T) {

	a := amount.FromUint64(1000)
	b := amount.FromUint64(300)

	diff, err := a.Sub(b)
	if nil != err {
		t.Fatalf("sub error: %s", err)
	}
	if "700" != diff.String() {
		t.Errorf("sub: %s  expected: 700", diff)
	}

	_, err = b.Sub(a)
	if fault.AmountUnderflow != err {
		t.Errorf("underflow error: %v  expected: %v", err, fault.AmountUnderflow)
	}

	// operands must be untouched after both calls
	if "1000" != a.String() || "300" != b.String() {
		t.Errorf("operands modified: a: %s  b: %s", a, b)
	}
}

// addition result must be independent of its operands
func TestAdd(t *testing.T) {

	a := amount.FromUint64(1)
	b := amount.FromUint64(2)
	sum := a.Add(b)
	if "3" != sum.String() {
		t.Errorf("add: %s  expected: 3", sum)
	}

	sum = sum.Add(sum)
	if "6" != sum.String() {
		t.Errorf("add: %s  expected: 6", sum)
	}
	if "1" != a.String() || "2" != b.String() {
		t.Errorf("operands modified: a: %s  b: %s", a, b)
	}
}

// JSON form is a decimal string
func TestMarshal(t *testing.T) {

	a := amount.FromUint64(1000000)
	buffer, err := json.Marshal(a)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	expected := []byte(`"1000000"`)
	if !bytes.Equal(expected, buffer) {
		t.Fatalf("marshal: %s  expected: %s", buffer, expected)
	}

	var b amount.Amount
	err = json.Unmarshal(buffer, &b)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if !a.Equal(&b) {
		t.Fatalf("unmarshal: %s  expected: %s", &b, a)
	}
}
