// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// AppendCounted - append a varint byte count followed by the bytes
func AppendCounted(buffer []byte, data []byte) []byte {
	buffer = append(buffer, ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// SplitCounted - split off one varint counted byte sequence
//
// returns the counted bytes, the remaining buffer and an ok flag which
// is false if the buffer is truncated
func SplitCounted(buffer []byte) ([]byte, []byte, bool) {
	length, n := FromVarint64(buffer)
	if 0 == n {
		return nil, nil, false
	}
	buffer = buffer[n:]
	if uint64(len(buffer)) < length {
		return nil, nil, false
	}
	return buffer[:length], buffer[length:], true
}
