// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/allowance"
	"github.com/bitmark-inc/ledgerd/rpc/blocks"
	"github.com/bitmark-inc/ledgerd/rpc/supply"
	"github.com/bitmark-inc/ledgerd/rpc/token"
	"github.com/bitmark-inc/ledgerd/rpc/transfer"
)

// Create - build the RPC server with all services registered
func Create(log *logger.L, l *ledger.Ledger) *rpc.Server {

	server := rpc.NewServer()

	_ = server.Register(token.New(log, l))
	_ = server.Register(transfer.New(log, l))
	_ = server.Register(allowance.New(log, l))
	_ = server.Register(supply.New(log, l))
	_ = server.Register(blocks.New(log, l))

	return server
}
