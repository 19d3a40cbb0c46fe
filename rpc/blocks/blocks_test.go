// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blocks_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/amount"
	"github.com/bitmark-inc/ledgerd/blockdump"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/blocks"
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

func TestGet(t *testing.T) {
	store, err := storage.InitialiseMemory()
	require.NoError(t, err)
	defer store.Finalise()

	l, err := ledger.Initialise(store, ledger.TokenConfiguration{})
	require.NoError(t, err)

	minter := &account.Identity{
		IdentityInterface: &account.ED25519Identity{
			Test:      true,
			PublicKey: minterKey,
		},
	}
	minterAccount, err := account.NewAccount(minter, nil)
	require.NoError(t, err)
	require.NoError(t, l.UpdateMintingAccount(minter, minterAccount))

	for i := 0; i < 3; i += 1 {
		_, err = l.Mint(minter, minterAccount, amount.FromUint64(100), nil)
		require.NoError(t, err)
	}

	service := blocks.New(logger.New("testing"), l)

	var reply blockdump.BlocksResult
	require.NoError(t, service.Get(&blocks.GetArguments{Start: 0, Count: 3}, &reply))

	assert.Equal(t, uint64(3), reply.LogLength)
	require.Len(t, reply.Blocks, 3)
	assert.Equal(t, "mint", reply.Blocks[0].Block.Op)
	assert.Empty(t, reply.ArchivedBlocks)

	// counts outside the permitted range are rejected
	err = service.Get(&blocks.GetArguments{Start: 0, Count: 0}, &reply)
	assert.Equal(t, fault.InvalidCount, err)

	err = service.Get(&blocks.GetArguments{Start: 0, Count: blocks.MaximumBlocksCount + 1}, &reply)
	assert.Equal(t, fault.InvalidCount, err)
}
