// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package merkle - hash tree commitment over transaction records
//
// an ordered list of records is committed to a single SHA3-256 root
// digest by hashing each record and repeatedly combining adjacent
// pairs; the trailing digest of an odd length level is paired with
// itself
package merkle
