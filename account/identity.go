// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/util"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	Nothing = iota // zero keytype **Just for Testing**
	ED25519 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02
	spare1KeyCode = 0x04
	spare2KeyCode = 0x08

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Identity - the externally authenticated principal that owns balances
//
// the ledger core treats this as an opaque byte sequence, the key
// variant encoding only exists so identities have a stable printable
// form with a checksum
type Identity struct {
	IdentityInterface
}

// IdentityInterface - interface for the identity variants
type IdentityInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
	IsTesting() bool
}

// ED25519Identity - for ed25519 public keys
type ED25519Identity struct {
	Test      bool
	PublicKey []byte
}

// NothingIdentity - just for debugging
type NothingIdentity struct {
	Test      bool
	PublicKey []byte
}

// IdentityFromBase58 - this converts a Base58 encoded string and returns an identity
//
// one of the specific identity types is returned using the base
// "IdentityInterface" interface type to allow individual methods to be called
func IdentityFromBase58(identityBase58Encoded string) (*Identity, error) {
	// Decode the identity
	identityDecoded := util.FromBase58(identityBase58Encoded)
	if 0 == len(identityDecoded) {
		return nil, fault.CannotDecodeIdentity
	}

	// Parse the key variant
	keyVariant, keyVariantLength := util.FromVarint64(identityDecoded)

	// Check key type
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	// compute algorithm
	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	// network selection
	isTest := 0 != keyVariant&testKeyCode

	// Compute key length
	keyLength := len(identityDecoded) - keyVariantLength - checksumLength
	if keyLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	// Checksum
	checksumStart := len(identityDecoded) - checksumLength
	checksum := sha3.Sum256(identityDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], identityDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	publicKey := identityDecoded[keyVariantLength:checksumStart]
	return identityFromKey(keyAlgorithm, isTest, publicKey)
}

// IdentityFromBytes - this converts a byte encoded buffer and returns an identity
//
// the buffer is the key variant followed by the raw public key, as
// produced by Bytes()
func IdentityFromBytes(identityBytes []byte) (*Identity, error) {

	// Parse the key variant
	keyVariant, keyVariantLength := util.FromVarint64(identityBytes)

	// Check key type
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	// compute algorithm
	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	// network selection
	isTest := 0 != keyVariant&testKeyCode

	// Compute key length
	keyLength := len(identityBytes) - keyVariantLength
	if keyLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	publicKey := identityBytes[keyVariantLength:]
	return identityFromKey(keyAlgorithm, isTest, publicKey)
}

// build the correct variant after the common checks
func identityFromKey(keyAlgorithm uint64, isTest bool, publicKey []byte) (*Identity, error) {
	switch keyAlgorithm {
	case ED25519:
		if ed25519.PublicKeySize != len(publicKey) {
			return nil, fault.InvalidKeyLength
		}
		return &Identity{
			IdentityInterface: &ED25519Identity{
				Test:      isTest,
				PublicKey: publicKey,
			},
		}, nil
	case Nothing:
		if 2 != len(publicKey) {
			return nil, fault.InvalidKeyLength
		}
		return &Identity{
			IdentityInterface: &NothingIdentity{
				Test:      isTest,
				PublicKey: publicKey,
			},
		}, nil
	default:
		return nil, fault.InvalidKeyType
	}
}

// UnmarshalText - convert a Base58 JSON form to an identity
func (identity *Identity) UnmarshalText(s []byte) error {
	i, err := IdentityFromBase58(string(s))
	if nil != err {
		return err
	}
	identity.IdentityInterface = i.IdentityInterface
	return nil
}

// ED25519
// -------

// KeyType - key type code (see enumeration above)
func (identity *ED25519Identity) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (identity *ED25519Identity) PublicKeyBytes() []byte {
	return identity.PublicKey[:]
}

// Bytes - byte slice for encoded key
func (identity *ED25519Identity) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if identity.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, identity.PublicKey[:]...)
}

// String - base58 encoding of encoded key
func (identity *ED25519Identity) String() string {
	buffer := identity.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - convert an identity to its Base58 JSON form
func (identity ED25519Identity) MarshalText() ([]byte, error) {
	return []byte(identity.String()), nil
}

// IsTesting - return whether the public key is in test mode or not
func (identity ED25519Identity) IsTesting() bool {
	return identity.Test
}

// Nothing
// -------

// KeyType - key type code (see enumeration above)
func (identity *NothingIdentity) KeyType() int {
	return Nothing
}

// PublicKeyBytes - fetch the public key as byte slice
func (identity *NothingIdentity) PublicKeyBytes() []byte {
	return identity.PublicKey[:]
}

// Bytes - byte slice for encoded key
func (identity *NothingIdentity) Bytes() []byte {
	keyVariant := byte(Nothing<<algorithmShift) | publicKeyCode
	if identity.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, identity.PublicKey[:]...)
}

// String - base58 encoding of encoded key
func (identity *NothingIdentity) String() string {
	buffer := identity.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - convert an identity to its Base58 JSON form
func (identity NothingIdentity) MarshalText() ([]byte, error) {
	return []byte(identity.String()), nil
}

// IsTesting - return whether the public key is in test mode or not
func (identity NothingIdentity) IsTesting() bool {
	return identity.Test
}
