// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/bitmark-inc/blockpack/blockrecord"
	"github.com/bitmark-inc/blockpack/fault"
	"github.com/bitmark-inc/blockpack/merkle"
	"github.com/bitmark-inc/blockpack/util"
)

// block 2 with transactions tx1 and tx2 chained to a genesis digest
//
// all digests verified with an independent SHA3-256 implementation
var expectedBlockTwo = []byte{
	0x01, 0x00, 0x02, 0x00, 0x02, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x68, 0x5c, 0xf6, 0x27,
	0x51, 0xce, 0xf6, 0x07, 0x27, 0x1e, 0xd7, 0x19,
	0x0b, 0x6a, 0x70, 0x74, 0x05, 0xc5, 0xb0, 0x7e,
	0xc0, 0x83, 0x01, 0x56, 0xe7, 0x48, 0xc0, 0xc2,
	0xea, 0x4a, 0x2c, 0xfe, 0xc5, 0x37, 0xa1, 0x57,
	0x31, 0x0b, 0x5b, 0x4d, 0x24, 0x23, 0x10, 0x28,
	0x26, 0x81, 0x17, 0x4c, 0x39, 0xa3, 0x30, 0x7a,
	0xc1, 0x0e, 0x4d, 0x79, 0x13, 0x0c, 0x65, 0xd9,
	0xf9, 0xc1, 0xb7, 0x0a, 0x00, 0x10, 0x5e, 0x5f,
	0x00, 0x00, 0x00, 0x00, 0x03, 0x74, 0x78, 0x31,
	0x03, 0x74, 0x78, 0x32,
}

func TestNewBlock(t *testing.T) {

	previous := merkle.NewDigest([]byte("genesis"))
	transactions := [][]byte{[]byte("tx1"), []byte("tx2")}

	packed, err := blockrecord.NewBlock(2, previous, 1600000000, transactions)
	if nil != err {
		t.Fatalf("new block error: %v", err)
	}

	if !bytes.Equal(expectedBlockTwo, packed) {
		t.Errorf("pack record: %x  expected: %x", packed, expectedBlockTwo)
		t.Errorf("*** GENERATED Packed:\n%s", util.FormatBytes("expectedBlockTwo", packed))
	}

	header, records, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %v", err)
	}

	if blockrecord.Version != header.Version {
		t.Errorf("version: %d  expected: %d", header.Version, blockrecord.Version)
	}
	if 2 != header.TransactionCount {
		t.Errorf("transaction count: %d  expected: 2", header.TransactionCount)
	}
	if 2 != header.Number {
		t.Errorf("number: %d  expected: 2", header.Number)
	}
	if previous != header.PreviousBlock {
		t.Errorf("previous block: %#v  expected: %#v", header.PreviousBlock, previous)
	}
	if 1600000000 != header.Timestamp {
		t.Errorf("timestamp: %d  expected: 1600000000", header.Timestamp)
	}

	expectedRoot := "c537a157310b5b4d242310282681174c39a3307ac10e4d79130c65d9f9c1b70a"
	if expectedRoot != header.MerkleRoot.String() {
		t.Errorf("merkle root: %s  expected: %s", header.MerkleRoot, expectedRoot)
	}

	if 2 != len(records) {
		t.Fatalf("record count: %d  expected: 2", len(records))
	}
	for i, expected := range transactions {
		if !bytes.Equal(expected, records[i]) {
			t.Errorf("record[%d]: %q  expected: %q", i, records[i], expected)
		}
	}

	// digest of the packed header links the next block back to this one
	packedHeader := blockrecord.PackedHeader{}
	copy(packedHeader[:], packed[:blockrecord.TotalHeaderSize])
	expectedDigest := "f498e389dde82751d0c746a3011d4b5adb5a2e03378d22b9c393c8374b0ac1ba"
	if expectedDigest != packedHeader.Digest().String() {
		t.Errorf("header digest: %s  expected: %s", packedHeader.Digest(), expectedDigest)
	}
}

func TestNewBlockEmpty(t *testing.T) {

	_, err := blockrecord.NewBlock(1, merkle.Digest{}, 1600000000, nil)
	if fault.ErrEmptyTransactionList != err {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewBlockTooManyTransactions(t *testing.T) {

	transactions := make([][]byte, blockrecord.MaximumTransactions+1)
	for i := range transactions {
		transactions[i] = []byte(fmt.Sprintf("tx-%d", i))
	}

	_, err := blockrecord.NewBlock(1, merkle.Digest{}, 1600000000, transactions)
	if fault.ErrTransactionCountOutOfRange != err {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUnpackTruncated(t *testing.T) {

	packed := append(blockrecord.PackedBlock{}, expectedBlockTwo...)

	_, _, err := packed[:blockrecord.TotalHeaderSize-1].Unpack()
	if fault.ErrInvalidBlockHeaderSize != err {
		t.Errorf("unexpected error: %v", err)
	}

	// cut inside the second record
	_, _, err = packed[:len(packed)-2].Unpack()
	if fault.ErrInvalidBlockLength != err {
		t.Errorf("unexpected error: %v", err)
	}

	// missing the whole transaction stream
	_, _, err = packed[:blockrecord.TotalHeaderSize].Unpack()
	if fault.ErrInvalidBlockLength != err {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUnpackTrailingData(t *testing.T) {

	packed := append(blockrecord.PackedBlock{}, expectedBlockTwo...)
	packed = append(packed, 0x00)

	_, _, err := packed.Unpack()
	if fault.ErrInvalidBlockLength != err {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUnpackTamperedRecord(t *testing.T) {

	packed := append(blockrecord.PackedBlock{}, expectedBlockTwo...)
	packed[len(packed)-1] ^= 0x40 // corrupt the final record byte

	_, _, err := packed.Unpack()
	if fault.ErrMerkleRootDoesNotMatch != err {
		t.Errorf("unexpected error: %v", err)
	}
}
