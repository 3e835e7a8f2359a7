// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised         = ProcessError("already initialised")
	ErrEmptyTransactionList       = InvalidError("transaction list is empty")
	ErrInvalidBlockHeaderSize     = LengthError("invalid block header size")
	ErrInvalidBlockHeaderVersion  = InvalidError("invalid block header version")
	ErrInvalidBlockLength         = LengthError("invalid block length")
	ErrInvalidDigestLength        = LengthError("invalid digest length")
	ErrInvalidRingSize            = InvalidError("invalid ring size")
	ErrMerkleRootDoesNotMatch     = InvalidError("merkle root does not match")
	ErrNotInitialised             = ProcessError("not initialised")
	ErrOutOfSequenceBlockNumber   = ProcessError("out of sequence block number")
	ErrTransactionCountOutOfRange = RecordError("transaction count out of range")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
