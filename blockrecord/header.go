// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/blockpack/fault"
	"github.com/bitmark-inc/blockpack/merkle"
)

// use fixed size array to simplify validation
type PackedHeader [TotalHeaderSize]byte

// packed header followed by the transaction byte stream
type PackedBlock []byte

// currently supported block version
const (
	Version = 1
)

// transactions per block
// limited by the uint16 count field
const (
	MinimumTransactions = 1
	MaximumTransactions = 10000
)

// byte sizes for the fields
const (
	VersionSize          = 2                   // block version number
	TransactionCountSize = 2                   // count of transactions in the block
	NumberSize           = 8                   // this block's number
	PreviousBlockSize    = merkle.DigestLength // digest of the previous block header
	MerkleRootSize       = merkle.DigestLength // root digest of all transactions in the block
	TimestampSize        = 8                   // timestamp as seconds since 1970-01-01T00:00 UTC
)

// offsets of the fields
const (
	versionOffset          = 0
	transactionCountOffset = versionOffset + VersionSize
	numberOffset           = transactionCountOffset + TransactionCountSize
	previousBlockOffset    = numberOffset + NumberSize
	merkleRootOffset       = previousBlockOffset + PreviousBlockSize
	timestampOffset        = merkleRootOffset + MerkleRootSize

	// to set the size of the header array
	TotalHeaderSize = timestampOffset + TimestampSize // total bytes in the header
)

// the unpacked header structure
type Header struct {
	Version          uint16        `json:"version"`
	TransactionCount uint16        `json:"transactionCount"`
	Number           uint64        `json:"number,string"`
	PreviousBlock    merkle.Digest `json:"previousBlock"`
	MerkleRoot       merkle.Digest `json:"merkleRoot"`
	Timestamp        uint64        `json:"timestamp,string"`
}

// turn a record into an array of bytes
func (header *Header) Pack() PackedHeader {
	buffer := PackedHeader{}

	binary.LittleEndian.PutUint16(buffer[versionOffset:], header.Version)
	binary.LittleEndian.PutUint16(buffer[transactionCountOffset:], header.TransactionCount)
	binary.LittleEndian.PutUint64(buffer[numberOffset:], header.Number)

	// digests are just copied as raw bytes
	copy(buffer[previousBlockOffset:], header.PreviousBlock[:])
	copy(buffer[merkleRootOffset:], header.MerkleRoot[:])

	binary.LittleEndian.PutUint64(buffer[timestampOffset:], header.Timestamp)

	return buffer
}

// turn a byte slice into a record
func (record PackedHeader) Unpack() (*Header, error) {

	header := &Header{}

	header.Version = binary.LittleEndian.Uint16(record[versionOffset:])
	header.TransactionCount = binary.LittleEndian.Uint16(record[transactionCountOffset:])
	header.Number = binary.LittleEndian.Uint64(record[numberOffset:])

	if Version != header.Version {
		return nil, fault.ErrInvalidBlockHeaderVersion
	}
	if header.TransactionCount < MinimumTransactions || header.TransactionCount > MaximumTransactions {
		return nil, fault.ErrTransactionCountOutOfRange
	}

	err := merkle.DigestFromBytes(&header.PreviousBlock, record[previousBlockOffset:merkleRootOffset])
	if nil != err {
		return nil, err
	}

	err = merkle.DigestFromBytes(&header.MerkleRoot, record[merkleRootOffset:timestampOffset])
	if nil != err {
		return nil, err
	}

	header.Timestamp = binary.LittleEndian.Uint64(record[timestampOffset:])

	return header, nil
}

// digest for a packed header
//
// links a block to its successor through the PreviousBlock field
func (record PackedHeader) Digest() merkle.Digest {
	return merkle.NewDigest(record[:])
}
