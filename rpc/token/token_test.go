// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/amount"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/token"
	"github.com/bitmark-inc/ledgerd/storage"
)

const testingDirName = "testing"

// Test main entrypoint
func TestMain(m *testing.M) {
	os.RemoveAll(testingDirName)
	os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "error",
		},
	}
	_ = logger.Initialise(logging)

	result := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(result)
}

var minterKey = []byte{
	0x66, 0x08, 0x07, 0xd0, 0x8a, 0x62, 0x1f, 0x7f,
	0x04, 0x15, 0x92, 0x6b, 0x39, 0x0f, 0x56, 0x21,
	0x40, 0xfa, 0x5f, 0x1b, 0x48, 0x45, 0x46, 0x93,
	0x60, 0xcc, 0x02, 0x9f, 0x2a, 0x03, 0x22, 0xf4,
}

func setup(t *testing.T) (*token.Token, *ledger.Ledger, *storage.Store) {
	store, err := storage.InitialiseMemory()
	require.NoError(t, err)

	l, err := ledger.Initialise(store, ledger.TokenConfiguration{
		Name:   "Query Token",
		Symbol: "QRY",
	})
	require.NoError(t, err)

	return token.New(logger.New("testing"), l), l, store
}

func TestInfo(t *testing.T) {
	service, _, store := setup(t)
	defer store.Finalise()

	var reply token.InfoReply
	require.NoError(t, service.Info(&token.InfoArguments{}, &reply))

	assert.Equal(t, "Query Token", reply.Name)
	assert.Equal(t, "QRY", reply.Symbol)
	assert.Equal(t, uint64(8), reply.Decimals)
	assert.Equal(t, "10000", reply.Fee.String())
	assert.True(t, reply.TotalSupply.IsZero())
	assert.Nil(t, reply.MintingAccount)
}

func TestMetadata(t *testing.T) {
	service, _, store := setup(t)
	defer store.Finalise()

	var reply token.MetadataReply
	require.NoError(t, service.Metadata(&token.InfoArguments{}, &reply))

	require.Len(t, reply.Metadata, 4)
	assert.Equal(t, "icrc1:name", reply.Metadata[0].Key)
	assert.Equal(t, "Query Token", reply.Metadata[0].Value)
}

func TestBalance(t *testing.T) {
	service, l, store := setup(t)
	defer store.Finalise()

	minter := &account.Identity{
		IdentityInterface: &account.ED25519Identity{
			Test:      true,
			PublicKey: minterKey,
		},
	}
	minterAccount, err := account.NewAccount(minter, nil)
	require.NoError(t, err)
	require.NoError(t, l.UpdateMintingAccount(minter, minterAccount))
	_, err = l.Mint(minter, minterAccount, amount.FromUint64(12345), nil)
	require.NoError(t, err)

	var reply token.BalanceReply
	err = service.Balance(&token.BalanceArguments{Account: minterAccount}, &reply)
	require.NoError(t, err)
	assert.Equal(t, "12345", reply.Balance.String())

	// a missing account is rejected
	err = service.Balance(&token.BalanceArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err)
}
