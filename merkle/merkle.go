// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"github.com/bitmark-inc/blockpack/fault"
)

// Tree - the hash tree over an ordered list of transaction records
//
// level 0 holds the leaf digests in record order, each following
// level is the pairwise reduction of the one below and the last
// level holds the single root digest
//
// the tree is immutable after construction so is safe for
// concurrent readers without locking
type Tree struct {
	levels [][]Digest
}

// NewTree - digest each record and reduce level by level to the root
//
// records are hashed in the order given; an empty list is an error
func NewTree(records [][]byte) (*Tree, error) {
	if 0 == len(records) {
		return nil, fault.ErrEmptyTransactionList
	}

	leaves := make([]Digest, len(records))
	for i, record := range records {
		leaves[i] = NewDigest(record)
	}

	tree := &Tree{
		levels: [][]Digest{leaves},
	}
	for level := leaves; len(level) > 1; {
		level = reduceLevel(level)
		tree.levels = append(tree.levels, level)
	}
	return tree, nil
}

// combine adjacent digests of one level into the next shorter level
//
// the parent digest covers the raw bytes of left followed by right;
// a level with an odd count pairs its trailing digest with itself
func reduceLevel(level []Digest) []Digest {

	next := make([]Digest, 0, (len(level)+1)/2)

	for i := 0; i < len(level); i += 2 {
		j := i + 1
		if j == len(level) {
			j = i // compensate for odd number
		}
		next = append(next, NewDigest(append(level[i][:], level[j][:]...)))
	}
	return next
}

// Root - the digest committing to the whole record list
func (tree *Tree) Root() Digest {
	return tree.levels[len(tree.levels)-1][0]
}

// Depth - the number of levels including leaves and root
//
// a single record tree has depth 1
func (tree *Tree) Depth() int {
	return len(tree.levels)
}

// LeafCount - the number of records committed by the tree
func (tree *Tree) LeafCount() int {
	return len(tree.levels[0])
}

// Level - copy of the digests at one level of the tree
//
// level 0 is the leaves; out of range depth returns nil
func (tree *Tree) Level(depth int) []Digest {
	if depth < 0 || depth >= len(tree.levels) {
		return nil
	}
	level := make([]Digest, len(tree.levels[depth]))
	copy(level, tree.levels[depth])
	return level
}
