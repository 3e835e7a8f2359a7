// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package compressor - lossless block compression
//
// stateless LZMA compression of packed block bytes using the xz
// container format; the only contract is that Decompress returns
// exactly what Compress was given
package compressor

import (
	"bytes"
	"io/ioutil"

	"github.com/ulikunitz/xz"
)

// Compress - pack block bytes into an xz stream
func Compress(blockData []byte) ([]byte, error) {
	buffer := &bytes.Buffer{}

	w, err := xz.NewWriter(buffer)
	if nil != err {
		return nil, err
	}
	_, err = w.Write(blockData)
	if nil != err {
		return nil, err
	}
	err = w.Close()
	if nil != err {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Decompress - recover the original block bytes from an xz stream
func Decompress(compressedData []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(compressedData))
	if nil != err {
		return nil, err
	}
	return ioutil.ReadAll(r)
}
