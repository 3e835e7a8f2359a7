// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockring

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockpack/fault"
	"github.com/bitmark-inc/blockpack/merkle"
)

// default number of blocks retained when the configuration does not
// say otherwise
const (
	DefaultSize = 20
)

// type to hold a block's number, header digest and crc64 check code
type ringBuffer struct {
	number uint64        // block number
	crc    uint64        // CRC64_ECMA(block_number, packed_block_bytes)
	digest merkle.Digest // header digest
}

// globals for the ring
type ringData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	height uint64

	ring      []ringBuffer
	ringIndex int
	used      int // filled entries, up to len(ring)

	// set once during initialise
	initialised bool
}

// global data
var globalData ringData

// Initialise - allocate the ring with a fixed number of slots
//
// old blocks fall out of the ring as new ones are stored; only the
// most recent size blocks stay queryable
func Initialise(size int) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	if size < 1 {
		return fault.ErrInvalidRingSize
	}

	log := logger.New("ring")
	globalData.log = log
	log.Info("starting…")

	log.Infof("blocks retained: %d", size)

	globalData.ring = make([]ringBuffer, size)
	clearRingBuffer()

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shut down the ring
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.ring = nil
	clearRingBuffer()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Put - store a block's fingerprint, overwriting the oldest slot
// when the ring is full
//
// numbers must arrive in sequence; any number is accepted as the
// first after initialise or clear
func Put(number uint64, digest merkle.Digest, packedBlock []byte) error {

	// start of critical section
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Infof("put block number: %d", number)

	if 0 != globalData.height && globalData.height+1 != number {
		return fault.ErrOutOfSequenceBlockNumber
	}

	i := globalData.ringIndex
	globalData.ring[i].number = number
	globalData.ring[i].digest = digest
	globalData.ring[i].crc = CRC(number, packedBlock)
	i = i + 1
	if i >= len(globalData.ring) {
		i = 0
	}
	globalData.ringIndex = i

	if globalData.used < len(globalData.ring) {
		globalData.used += 1
	}

	globalData.height = number

	return nil
}

// Height - highest block number ever stored
//
// unchanged when older blocks fall out of the ring
func Height() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.height
}

// Retained - number of blocks currently held in the ring
func Retained() int {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.used
}

// DigestForBlock - fetch a digest from the ring if still retained
func DigestForBlock(number uint64) *merkle.Digest {
	globalData.RLock()
	defer globalData.RUnlock()

	j, ok := slotForBlock(number)
	if !ok {
		return nil
	}
	digest := globalData.ring[j].digest
	return &digest
}

// CRCForBlock - fetch a check code from the ring if still retained
func CRCForBlock(number uint64) (uint64, bool) {
	globalData.RLock()
	defer globalData.RUnlock()

	j, ok := slotForBlock(number)
	if !ok {
		return 0, false
	}
	return globalData.ring[j].crc, true
}

// GetLatestCRC - fetch the check code of the newest stored block
//
// zero when nothing has been stored yet
func GetLatestCRC() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	if 0 == globalData.used {
		return 0
	}
	i := globalData.ringIndex - 1
	if i < 0 {
		i = len(globalData.ring) - 1
	}
	return globalData.ring[i].crc
}

// Clear - drop all stored blocks keeping the ring allocated
func Clear() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("clear")
	clearRingBuffer()

	return nil
}

// must hold lock to call this
func clearRingBuffer() {
	globalData.ringIndex = 0
	globalData.used = 0
	globalData.height = 0
}

// locate the slot holding a block number
// must hold lock to call this
func slotForBlock(number uint64) (int, bool) {
	if 0 == globalData.used || number > globalData.height {
		return 0, false
	}
	i := globalData.height - number
	if i >= uint64(globalData.used) {
		return 0, false
	}
	j := globalData.ringIndex - 1 - int(i)
	if j < 0 {
		j += len(globalData.ring)
	}
	if number != globalData.ring[j].number {
		logger.Panicf("blockring.slotForBlock: ring buffer corrupted block number, actual: %d  expected: %d", globalData.ring[j].number, number)
	}
	return j, true
}
