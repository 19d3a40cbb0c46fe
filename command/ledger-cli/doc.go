// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package main - command line client for the ledgerd JSON RPC
//
// connects over TLS and issues query and update calls, the caller
// identity for update operations is supplied as a base58 key
package main
