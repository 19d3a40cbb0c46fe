// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockdump - render a range of transaction log entries
//
// used for audit queries: each record is rendered into a canonical
// tagged map with a fixed key vocabulary per operation kind, keys
// for absent optional fields are omitted rather than emitted as
// null placeholders
package blockdump
