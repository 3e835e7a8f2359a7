// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockring

import (
	"github.com/bitmark-inc/blockpack/merkle"
)

// to iterate though the ring
type RingReader struct {
	remaining int
	current   int
	entry     ringBuffer
}

// start of ring iterator
func NewRingReader() *RingReader {
	globalData.RLock()
	defer globalData.RUnlock()

	c := globalData.ringIndex - 1
	if c < 0 {
		c = len(globalData.ring) - 1
	}
	return &RingReader{
		remaining: globalData.used,
		current:   c,
	}
}

// fetch item from ring
// works in reverse, fetching older items
func (r *RingReader) Next() bool {
	if r.remaining <= 0 {
		return false
	}

	globalData.RLock()
	r.entry = globalData.ring[r.current]
	size := len(globalData.ring)
	globalData.RUnlock()

	r.current -= 1
	if r.current < 0 {
		r.current = size - 1
	}
	r.remaining -= 1
	return true
}

// read the fetched block number
func (r *RingReader) Number() uint64 {
	return r.entry.number
}

// read the fetched header digest
func (r *RingReader) Digest() merkle.Digest {
	return r.entry.digest
}

// read the fetched crc value
func (r *RingReader) GetCRC() uint64 {
	return r.entry.crc
}
