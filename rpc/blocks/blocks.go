// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blocks

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/blockdump"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/ratelimit"
)

const (
	// MaximumBlocksCount - upper limit on blocks per call
	MaximumBlocksCount = 100

	rateLimitBlocks = 200
	rateBurstBlocks = 100
)

// Block - an RPC entry for the transaction log export
type Block struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  *ledger.Ledger
}

// New - create the block export service
func New(log *logger.L, l *ledger.Ledger) *Block {
	return &Block{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitBlocks, rateBurstBlocks),
		Ledger:  l,
	}
}

// GetArguments - the range of log indices to export
type GetArguments struct {
	Start uint64 `json:"start"`
	Count int    `json:"count"`
}

// Get - export a range of log entries in canonical form
func (block *Block) Get(arguments *GetArguments, reply *blockdump.BlocksResult) error {

	if err := ratelimit.LimitN(block.Limiter, arguments.Count, MaximumBlocksCount); nil != err {
		return err
	}

	block.Log.Infof("Block.Get: %+v", arguments)

	result, err := blockdump.GetBlocks(block.Ledger, arguments.Start, uint64(arguments.Count))
	if nil != err {
		return err
	}

	*reply = *result
	return nil
}
