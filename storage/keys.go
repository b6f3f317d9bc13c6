// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/bitmark-inc/aitrustd/fault"
)

const (
	maximumKeyLength = 1024
)

// append a varint length followed by the bytes
func appendField(buffer []byte, field string) []byte {
	buffer = binary.AppendUvarint(buffer, uint64(len(field)))
	return append(buffer, field...)
}

// split a leading length prefixed field from a buffer
func splitField(buffer []byte) (string, []byte, error) {
	n, count := binary.Uvarint(buffer)
	if count <= 0 || uint64(len(buffer)-count) < n {
		return "", nil, fault.CorruptRecord
	}
	end := count + int(n)
	return string(buffer[count:end]), buffer[end:], nil
}

// IndexValuesKey - printable encoding of an ordered list of index values
//
// used by backends that store the index tuple as a single column
func IndexValuesKey(values []string) string {
	buffer := make([]byte, 0, 64)
	for _, v := range values {
		buffer = appendField(buffer, v)
	}
	return hex.EncodeToString(buffer)
}

// CheckKey - reject keys that cannot be stored
func CheckKey(key string) error {
	if "" == key {
		return fault.MissingParameters
	}
	if len(key) > maximumKeyLength {
		return fault.KeyTooLong
	}
	return nil
}
