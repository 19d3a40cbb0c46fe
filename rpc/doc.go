// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC interface to the token ledger
//
// services are registered onto a net/rpc server and served over TLS
// using the JSON codec, one goroutine per connection up to a
// configured connection limit
package rpc
