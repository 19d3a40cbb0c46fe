// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdump_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/amount"
	"github.com/bitmark-inc/ledgerd/blockdump"
	"github.com/bitmark-inc/ledgerd/ledger"
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

var aliceKey = []byte{
	0x9f, 0xc4, 0x86, 0xa2, 0x53, 0x4f, 0x17, 0xe3,
	0x67, 0x07, 0xfa, 0x4b, 0x95, 0x3e, 0x3b, 0x34,
	0x00, 0xe2, 0x72, 0x9f, 0x65, 0x61, 0x16, 0xdd,
	0x7b, 0x01, 0x8d, 0xf3, 0x46, 0x98, 0xbd, 0xc2,
}

var bobKey = []byte{
	0x55, 0xb2, 0x98, 0x88, 0x17, 0xf7, 0xea, 0xec,
	0x37, 0x74, 0x1b, 0x82, 0x44, 0x71, 0x63, 0xca,
	0xaa, 0x5a, 0x9d, 0xb2, 0xb6, 0xf0, 0xce, 0x72,
	0x26, 0x26, 0x33, 0x8e, 0x5e, 0x3f, 0xd7, 0xf7,
}

func identity(publicKey []byte) *account.Identity {
	return &account.Identity{
		IdentityInterface: &account.ED25519Identity{
			Test:      true,
			PublicKey: publicKey,
		},
	}
}

func accountOf(t *testing.T, publicKey []byte, subaccount []byte) *account.Account {
	acc, err := account.NewAccount(identity(publicKey), subaccount)
	require.NoError(t, err)
	return acc
}

// a ledger holding one record of every kind:
//
//	0: mint    1000000 to alice
//	1: xfer     200000 alice to bob, fee, with memo
//	2: approve   50000 alice to bob, with expiry
//	3: xfer      50000 alice to subaccount of bob, spender bob
//	4: burn     100000 from alice
func populatedLedger(t *testing.T) (*ledger.Ledger, *storage.Store) {
	store, err := storage.InitialiseMemory()
	require.NoError(t, err)

	l, err := ledger.Initialise(store, ledger.TokenConfiguration{})
	require.NoError(t, err)

	minter := identity(minterKey)
	require.NoError(t, l.UpdateMintingAccount(minter, accountOf(t, minterKey, nil)))

	alice := accountOf(t, aliceKey, nil)
	bob := accountOf(t, bobKey, nil)

	_, err = l.Mint(minter, alice, amount.FromUint64(1000000), nil)
	require.NoError(t, err)

	_, err = l.Transfer(identity(aliceKey), ledger.TransferArgs{
		To:     bob,
		Amount: amount.FromUint64(200000),
		Memo:   []byte("rent"),
	})
	require.NoError(t, err)

	_, err = l.Approve(identity(aliceKey), ledger.ApproveArgs{
		Spender:   bob,
		Amount:    amount.FromUint64(50000),
		ExpiresAt: uint64(1) << 62,
	})
	require.NoError(t, err)

	_, err = l.TransferFrom(identity(bobKey), ledger.TransferFromArgs{
		From:   alice,
		To:     accountOf(t, bobKey, []byte{0x01, 0x02}),
		Amount: amount.FromUint64(50000),
	})
	require.NoError(t, err)

	_, err = l.Burn(identity(aliceKey), alice, amount.FromUint64(100000), nil)
	require.NoError(t, err)

	return l, store
}

func TestGetBlocks(t *testing.T) {
	l, store := populatedLedger(t)
	defer store.Finalise()

	result, err := blockdump.GetBlocks(l, 0, l.LogLength())
	require.NoError(t, err)

	assert.Equal(t, uint64(5), result.LogLength)
	require.Len(t, result.Blocks, 5)
	require.NotNil(t, result.ArchivedBlocks)
	assert.Empty(t, result.ArchivedBlocks)

	expectedOps := []string{"mint", "xfer", "approve", "xfer", "burn"}
	for i, block := range result.Blocks {
		assert.Equal(t, uint64(i), block.ID)
		assert.Equal(t, expectedOps[i], block.Block.Op)
		assert.NotZero(t, block.Block.Ts)
	}

	mint := result.Blocks[0].Block
	assert.Nil(t, mint.From)
	assert.Nil(t, mint.Spender)
	assert.Nil(t, mint.Fee)
	require.Len(t, mint.To, 1)
	assert.Equal(t, "1000000", mint.Amt.String())

	transfer := result.Blocks[1].Block
	require.Len(t, transfer.From, 1)
	require.Len(t, transfer.To, 1)
	assert.Nil(t, transfer.Spender)
	assert.Equal(t, "200000", transfer.Amt.String())
	assert.Equal(t, "10000", transfer.Fee.String())
	assert.Equal(t, blockdump.Blob("rent"), transfer.Memo)

	approve := result.Blocks[2].Block
	require.Len(t, approve.Spender, 1)
	assert.Equal(t, "50000", approve.Amt.String())
	assert.Equal(t, uint64(1)<<62, approve.ExpiresAt)
	assert.Nil(t, approve.ExpectedAllowance)

	// the spender initiated transfer carries the spender and the
	// subaccount appears as the second blob of the pair
	spent := result.Blocks[3].Block
	require.Len(t, spent.Spender, 1)
	require.Len(t, spent.To, 2)
	assert.Equal(t, blockdump.Blob{0x01, 0x02}, spent.To[1])

	burn := result.Blocks[4].Block
	require.Len(t, burn.From, 1)
	assert.Nil(t, burn.To)
	assert.Nil(t, burn.Fee)
	assert.Equal(t, "100000", burn.Amt.String())
}

func TestGetBlocksRanges(t *testing.T) {
	l, store := populatedLedger(t)
	defer store.Finalise()

	// a partial range
	result, err := blockdump.GetBlocks(l, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), result.LogLength)
	require.Len(t, result.Blocks, 2)
	assert.Equal(t, uint64(1), result.Blocks[0].ID)
	assert.Equal(t, uint64(2), result.Blocks[1].ID)

	// a range past the end is clipped
	result, err = blockdump.GetBlocks(l, 4, 100)
	require.NoError(t, err)
	require.Len(t, result.Blocks, 1)
	assert.Equal(t, uint64(4), result.Blocks[0].ID)

	// an out of range start is empty, not an error
	result, err = blockdump.GetBlocks(l, 100, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), result.LogLength)
	assert.Empty(t, result.Blocks)
	assert.NotNil(t, result.ArchivedBlocks)

	// a nil ledger is rejected
	_, err = blockdump.GetBlocks(nil, 0, 1)
	assert.Error(t, err)
}

func TestBlocksJSON(t *testing.T) {
	l, store := populatedLedger(t)
	defer store.Finalise()

	result, err := blockdump.GetBlocks(l, 0, 2)
	require.NoError(t, err)

	buffer, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buffer, &decoded))

	// archived blocks serialise as an empty array, never null
	assert.Equal(t, []interface{}{}, decoded["archivedBlocks"])

	blocks := decoded["blocks"].([]interface{})
	require.Len(t, blocks, 2)

	mint := blocks[0].(map[string]interface{})["block"].(map[string]interface{})
	assert.Equal(t, "mint", mint["op"])

	// absent optional keys are dropped entirely
	_, hasFrom := mint["from"]
	assert.False(t, hasFrom)
	_, hasFee := mint["fee"]
	assert.False(t, hasFee)
	_, hasMemo := mint["memo"]
	assert.False(t, hasMemo)

	transfer := blocks[1].(map[string]interface{})["block"].(map[string]interface{})
	assert.Equal(t, "xfer", transfer["op"])
	assert.Equal(t, "72656e74", transfer["memo"])
	from := transfer["from"].([]interface{})
	require.Len(t, from, 1)
}
