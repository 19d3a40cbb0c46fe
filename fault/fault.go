// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AllowanceExpired         = InvalidError("allowance expired")
	AlreadyInitialised       = ProcessError("already initialised")
	AmountNegative           = InvalidError("amount cannot be negative")
	AmountUnderflow          = InvalidError("amount subtraction underflow")
	BalanceUnderflow         = ProcessError("balance debit exceeds balance")
	CannotDecodeAccount      = RecordError("cannot decode account")
	CannotDecodeAllowance    = RecordError("cannot decode allowance")
	CannotDecodeAmount       = RecordError("cannot decode amount")
	CannotDecodeIdentity     = RecordError("cannot decode identity")
	CannotDecodeMetadata     = RecordError("cannot decode metadata")
	CannotDecodeRecord       = RecordError("cannot decode transaction record")
	CertificateFileExists    = ExistsError("certificate file exists")
	ChecksumMismatch         = ProcessError("checksum mismatch")
	InvalidCount             = InvalidError("invalid count")
	InvalidCursor            = InvalidError("invalid cursor")
	InvalidIpAddress         = InvalidError("invalid ip Address")
	InvalidItem              = InvalidError("invalid item")
	InvalidKeyLength         = InvalidError("invalid key length")
	InvalidKeyType           = InvalidError("invalid key type")
	InvalidLoggerChannel     = InvalidError("invalid logger channel")
	InvalidPortNumber        = InvalidError("invalid port number")
	InvalidStructPointer     = InvalidError("invalid struct pointer")
	InvalidSubaccountLength  = InvalidError("invalid subaccount length")
	KeyFileExists            = ExistsError("key file exists")
	MemoTooLong              = LengthError("memo too long")
	MissingParameters        = InvalidError("missing parameters")
	NameTooLong              = LengthError("name too long")
	NotAuthorised            = InvalidError("not authorised")
	NotInitialised           = ProcessError("not initialised")
	NotMintingAccount        = InvalidError("only the minting account can mint")
	NotOwnerAccount          = InvalidError("only the account owner can burn")
	NotPublicKey             = RecordError("not a public key")
	RateLimiting             = ProcessError("rate limiting")
	SymbolTooLong            = LengthError("symbol too long")
	TransactionInUse         = ProcessError("transaction already in use")
	TransactionNotFound      = NotFoundError("transaction not found")
	TransactionTooOld        = InvalidError("transaction too old")
	WrongNetworkForPublicKey = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// IsErrExists - determine if an exists error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine if an invalid error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - determine if a length error
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - determine if a not found error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine if a process error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// IsErrRecord - determine if a record error
func IsErrRecord(e error) bool { _, ok := e.(RecordError); return ok }
