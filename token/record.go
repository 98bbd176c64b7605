// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"encoding/binary"

	"github.com/agritrace/anchord/fault"
	"github.com/agritrace/anchord/util"
)

// Metadata - the batch record stored per identifier
type Metadata struct {
	Code        string `json:"code"`
	Quantity    uint64 `json:"quantity"`
	Description string `json:"description"`
	ContentRef  string `json:"contentRef"`
	CreatedAt   int64  `json:"createdAt"`
	IsContainer bool   `json:"isContainer"`
}

// Pack - binary form of a batch record
//
// flags ++ quantity ++ createdAt ++ code ++ description ++ contentRef
// (string items prefixed by a varint byte count)
func (metadata *Metadata) Pack() []byte {
	flags := uint64(0)
	if metadata.IsContainer {
		flags = 1
	}
	buffer := util.ToVarint64(flags)
	buffer = append(buffer, util.ToVarint64(metadata.Quantity)...)
	buffer = append(buffer, util.ToVarint64(uint64(metadata.CreatedAt))...)
	buffer = util.AppendCounted(buffer, []byte(metadata.Code))
	buffer = util.AppendCounted(buffer, []byte(metadata.Description))
	buffer = util.AppendCounted(buffer, []byte(metadata.ContentRef))
	return buffer
}

// UnpackMetadata - decode the binary form of a batch record
func UnpackMetadata(buffer []byte) (*Metadata, error) {
	flags, n := util.FromVarint64(buffer)
	if 0 == n || flags > 1 {
		return nil, fault.ErrCorruptRecord
	}
	buffer = buffer[n:]

	quantity, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.ErrCorruptRecord
	}
	buffer = buffer[n:]

	createdAt, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.ErrCorruptRecord
	}
	buffer = buffer[n:]

	code, buffer, ok := util.SplitCounted(buffer)
	if !ok {
		return nil, fault.ErrCorruptRecord
	}
	description, buffer, ok := util.SplitCounted(buffer)
	if !ok {
		return nil, fault.ErrCorruptRecord
	}
	contentRef, buffer, ok := util.SplitCounted(buffer)
	if !ok || 0 != len(buffer) {
		return nil, fault.ErrCorruptRecord
	}

	return &Metadata{
		Code:        string(code),
		Quantity:    quantity,
		Description: string(description),
		ContentRef:  string(contentRef),
		CreatedAt:   int64(createdAt),
		IsContainer: 1 == flags,
	}, nil
}

// binary form of a lineage record: child count then each identifier
func packLineage(children []uint64) []byte {
	buffer := util.ToVarint64(uint64(len(children)))
	for _, child := range children {
		buffer = append(buffer, util.ToVarint64(child)...)
	}
	return buffer
}

func unpackLineage(buffer []byte) ([]uint64, error) {
	count, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.ErrCorruptRecord
	}
	buffer = buffer[n:]

	children := make([]uint64, count)
	for i := uint64(0); i < count; i += 1 {
		child, n := util.FromVarint64(buffer)
		if 0 == n {
			return nil, fault.ErrCorruptRecord
		}
		buffer = buffer[n:]
		children[i] = child
	}
	if 0 != len(buffer) {
		return nil, fault.ErrCorruptRecord
	}
	return children, nil
}

// big endian key for one identifier
func identifierKey(identifier uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, identifier)
	return key
}
