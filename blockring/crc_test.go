// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockring_test

import (
	"testing"

	"github.com/bitmark-inc/blockpack/blockring"
)

func TestCRC(t *testing.T) {

	// check codes verified with an independent CRC64/ECMA implementation
	expected := uint64(0x9fe8b636c016536d)

	actual := blockring.CRC(1, []byte("blockpack block one"))
	if expected != actual {
		t.Fatalf("crc expected: 0x%016x  actual: 0x%016x", expected, actual)
	}
}

func TestCRCSeededByNumber(t *testing.T) {

	expected := uint64(0x5c7081a154074964)

	actual := blockring.CRC(9, []byte("pruned window entry"))
	if expected != actual {
		t.Fatalf("crc expected: 0x%016x  actual: 0x%016x", expected, actual)
	}

	// same bytes at another height must differ
	other := blockring.CRC(10, []byte("pruned window entry"))
	if other == actual {
		t.Fatalf("crc unchanged by number: 0x%016x", other)
	}
}
