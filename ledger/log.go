// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// IndexedRecord - one log entry and its assigned index
type IndexedRecord struct {
	Index  uint64
	Record transactionrecord.Transaction
}

// LogLength - current count of appended records
//
// indices are dense so this is also the next index to be assigned;
// there is no separately maintained counter that could desynchronise
func (l *Ledger) LogLength() uint64 {
	l.RLock()
	defer l.RUnlock()
	return l.logLength()
}

// GetRecord - point lookup of one log entry
func (l *Ledger) GetRecord(index uint64) (transactionrecord.Transaction, bool) {
	l.RLock()
	defer l.RUnlock()

	buffer := l.store.Transactions.Get(indexKey(index))
	if nil == buffer {
		return nil, false
	}
	return l.unpackLogEntry(index, buffer), true
}

// RangeRecords - records for indices in [start, start+count) clipped
// to the log length, in ascending index order
//
// the second result is the log length at call time; both are taken
// under one lock so the snapshot is consistent
func (l *Ledger) RangeRecords(start uint64, count uint64) ([]IndexedRecord, uint64) {
	l.RLock()
	defer l.RUnlock()

	length := l.logLength()

	end := start + count
	if end < start || end > length { // clip, guarding wrap around
		end = length
	}
	if start >= end {
		return []IndexedRecord{}, length
	}

	records := make([]IndexedRecord, 0, end-start)
	for index := start; index < end; index += 1 {
		buffer := l.store.Transactions.Get(indexKey(index))
		if nil == buffer {
			// the log is dense, a gap is corruption
			logger.Panicf("transaction log gap at index: %d", index)
		}
		records = append(records, IndexedRecord{
			Index:  index,
			Record: l.unpackLogEntry(index, buffer),
		})
	}
	return records, length
}

// derive the length from the last stored key
func (l *Ledger) logLength() uint64 {
	last, found := l.store.Transactions.LastElement()
	if !found {
		return 0
	}
	if 8 != len(last.Key) {
		logger.Panicf("transaction log key: %x is not an index", last.Key)
	}
	return binary.BigEndian.Uint64(last.Key) + 1
}

// append one record inside the current batch and assign its index
func (l *Ledger) appendRecord(trx storage.Transaction, record transactionrecord.Transaction) uint64 {
	packed, err := record.Pack()
	logger.PanicIfError("ledger.appendRecord", err)

	index := l.logLength()
	trx.Put(l.store.Transactions, indexKey(index), packed)
	return index
}

func (l *Ledger) unpackLogEntry(index uint64, buffer []byte) transactionrecord.Transaction {
	record, _, err := transactionrecord.Packed(buffer).Unpack()
	if nil != err {
		logger.Panicf("transaction log decode error at index: %d: %s", index, err)
	}
	return record
}

// 8 byte big endian key keeps the pool in index order
func indexKey(index uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, index)
	return key
}
