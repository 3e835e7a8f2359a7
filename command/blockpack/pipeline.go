// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockpack/blockrecord"
	"github.com/bitmark-inc/blockpack/blockring"
	"github.com/bitmark-inc/blockpack/compressor"
	"github.com/bitmark-inc/blockpack/merkle"
	"github.com/bitmark-inc/blockpack/statedelta"
	"github.com/bitmark-inc/blockpack/zkproof"
)

// run the packing pipeline over the configured blocks
//
// each block: apply its transactions to the balance state, pack the
// records under a merkle root chained to the previous header digest,
// compress the packed bytes and store the block's fingerprint in the
// ring; afterwards report the retained window, the balances and a
// placeholder proof round over the first record
func runPipeline(log *logger.L, conf *Configuration, quiet bool) error {

	state := statedelta.New()

	// zero digest marks the first block as having no predecessor
	previousBlock := merkle.Digest{}

	var firstRecord []byte

	for i, blk := range conf.Blocks {
		number := uint64(i + 1)

		records := make([][]byte, len(blk.Transactions))
		for j, tx := range blk.Transactions {
			delta := state.Apply(tx)
			log.Infof("block: %d  transaction: %q  delta: %v", number, tx.String(), delta)
			records[j] = []byte(tx.String())
		}
		if nil == firstRecord {
			firstRecord = records[0]
		}

		packed, err := blockrecord.NewBlock(number, previousBlock, uint64(time.Now().Unix()), records)
		if nil != err {
			return err
		}

		compressed, err := compressor.Compress(packed)
		if nil != err {
			return err
		}
		log.Infof("block: %d  packed: %d bytes  compressed: %d bytes  ratio: %.2f",
			number, len(packed), len(compressed), float64(len(compressed))/float64(len(packed)))

		// round trip the stored form and recheck the commitment
		// before the block is accepted
		restored, err := compressor.Decompress(compressed)
		if nil != err {
			return err
		}
		if !bytes.Equal(restored, packed) {
			return fmt.Errorf("block: %d compression round trip mismatch", number)
		}
		header, transactions, err := blockrecord.PackedBlock(restored).Unpack()
		if nil != err {
			return err
		}
		log.Infof("block: %d  merkle root verified: %s  transactions: %d",
			number, header.MerkleRoot, len(transactions))

		digest, err := packed.HeaderDigest()
		if nil != err {
			return err
		}
		err = blockring.Put(number, digest, packed)
		if nil != err {
			return err
		}

		if !quiet {
			fmt.Printf("block: %d  digest: %s  packed: %d bytes  compressed: %d bytes\n",
				number, digest, len(packed), len(compressed))
		}

		previousBlock = digest
	}

	// the retained window, newest block first
	log.Infof("height: %d  retained: %d", blockring.Height(), blockring.Retained())
	reader := blockring.NewRingReader()
	for reader.Next() {
		log.Infof("retained block: %d  crc: 0x%016x  digest: %s",
			reader.Number(), reader.GetCRC(), reader.Digest())
	}

	// final balances
	for _, account := range state.Accounts() {
		balance, _ := state.Balance(account)
		log.Infof("balance: %s: %d", account, balance)
	}
	log.Infof("transactions applied: %d", state.TransactionCount())
	log.Infof("latest crc: 0x%016x", blockring.GetLatestCRC())

	// placeholder proof round over the first record
	proof := zkproof.Generate(firstRecord)
	if !zkproof.Verify(proof, firstRecord) {
		return fmt.Errorf("proof verification failed for record: %q", firstRecord)
	}
	log.Infof("proof verified: %q  digest: %s", proof.Proof, proof.DataDigest)

	if !quiet {
		fmt.Printf("height: %d  retained: %d  latest crc: 0x%016x\n",
			blockring.Height(), blockring.Retained(), blockring.GetLatestCRC())
	}

	return nil
}
