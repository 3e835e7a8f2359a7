// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"github.com/bitmark-inc/blockpack/fault"
	"github.com/bitmark-inc/blockpack/merkle"
	"github.com/bitmark-inc/blockpack/util"
)

// NewBlock - assemble transactions into a packed block
//
// the merkle root over all records is computed here and bound into
// the header; the transaction stream is each record prefixed by its
// varint64 length
func NewBlock(number uint64, previousBlock merkle.Digest, timestamp uint64, transactions [][]byte) (PackedBlock, error) {

	if 0 == len(transactions) {
		return nil, fault.ErrEmptyTransactionList
	}
	if len(transactions) > MaximumTransactions {
		return nil, fault.ErrTransactionCountOutOfRange
	}

	tree, err := merkle.NewTree(transactions)
	if nil != err {
		return nil, err
	}

	header := Header{
		Version:          Version,
		TransactionCount: uint16(len(transactions)),
		Number:           number,
		PreviousBlock:    previousBlock,
		MerkleRoot:       tree.Root(),
		Timestamp:        timestamp,
	}

	packedHeader := header.Pack()

	blockBytes := packedHeader[:]
	for _, tx := range transactions {
		blockBytes = append(blockBytes, util.ToVarint64(uint64(len(tx)))...)
		blockBytes = append(blockBytes, tx...)
	}
	return blockBytes, nil
}

// HeaderDigest - digest of the header portion of a packed block
//
// this is the value the next block carries in its PreviousBlock
// field and the value stored in the block ring
func (block PackedBlock) HeaderDigest() (merkle.Digest, error) {
	if len(block) < TotalHeaderSize {
		return merkle.Digest{}, fault.ErrInvalidBlockHeaderSize
	}
	packedHeader := PackedHeader{}
	copy(packedHeader[:], block[:TotalHeaderSize])
	return packedHeader.Digest(), nil
}

// Unpack - decode and verify a packed block
//
// header checks first, then the transaction stream is decoded and
// the merkle root is recomputed; a block whose recomputed root does
// not match the header commitment is rejected
func (block PackedBlock) Unpack() (*Header, [][]byte, error) {

	if len(block) < TotalHeaderSize {
		return nil, nil, fault.ErrInvalidBlockHeaderSize
	}

	packedHeader := PackedHeader{}
	copy(packedHeader[:], block[:TotalHeaderSize])

	header, err := packedHeader.Unpack()
	if nil != err {
		return nil, nil, err
	}

	transactions := make([][]byte, 0, header.TransactionCount)

	data := block[TotalHeaderSize:]
	for i := uint16(0); i < header.TransactionCount; i += 1 {
		length, byteCount := util.FromVarint64(data)
		if 0 == byteCount {
			return nil, nil, fault.ErrInvalidBlockLength
		}
		n := uint64(byteCount)
		if uint64(len(data))-n < length {
			return nil, nil, fault.ErrInvalidBlockLength
		}
		record := make([]byte, length)
		copy(record, data[n:n+length])
		transactions = append(transactions, record)
		data = data[n+length:]
	}

	// trailing bytes after the declared transactions
	if 0 != len(data) {
		return nil, nil, fault.ErrInvalidBlockLength
	}

	tree, err := merkle.NewTree(transactions)
	if nil != err {
		return nil, nil, err
	}
	if tree.Root() != header.MerkleRoot {
		return nil, nil, fault.ErrMerkleRootDoesNotMatch
	}

	return header, transactions, nil
}
