// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package anchor

import (
	"github.com/agritrace/anchord/account"
	"github.com/agritrace/anchord/fault"
	"github.com/agritrace/anchord/merkle"
	"github.com/agritrace/anchord/util"
)

// Entry - one anchored event
//
// keyed by event hash in the anchors pool; immutable once written
type Entry struct {
	BatchCode string            `json:"batchCode"`
	EventType EventType         `json:"eventType"`
	CreatedAt int64             `json:"createdAt"`
	Submitter *account.Identity `json:"submitter"`
}

// AggregationEntry - one anchored aggregation
//
// keyed by container code in the aggregations pool; the event hash is
// also anchored as a normal Entry under the standard anchoring rule
type AggregationEntry struct {
	EventHash  merkle.Digest     `json:"eventHash"`
	Root       merkle.Digest     `json:"merkleRoot"`
	ChildCount uint64            `json:"childCount"`
	CreatedAt  int64             `json:"createdAt"`
	Submitter  *account.Identity `json:"submitter"`
}

// Pack - binary form of an anchor entry
//
// eventType ++ createdAt ++ batch code ++ submitter
// (all variable length items prefixed by a varint byte count)
func (entry *Entry) Pack() []byte {
	buffer := util.ToVarint64(uint64(entry.EventType))
	buffer = append(buffer, util.ToVarint64(uint64(entry.CreatedAt))...)
	buffer = appendBytes(buffer, []byte(entry.BatchCode))
	buffer = appendBytes(buffer, entry.Submitter.Bytes())
	return buffer
}

// UnpackEntry - decode the binary form of an anchor entry
func UnpackEntry(buffer []byte) (*Entry, error) {
	eventType, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.ErrCorruptRecord
	}
	buffer = buffer[n:]

	createdAt, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.ErrCorruptRecord
	}
	buffer = buffer[n:]

	code, buffer, err := nextBytes(buffer)
	if nil != err {
		return nil, err
	}

	identityBytes, buffer, err := nextBytes(buffer)
	if nil != err {
		return nil, err
	}
	if 0 != len(buffer) {
		return nil, fault.ErrCorruptRecord
	}

	submitter, err := account.IdentityFromBytes(identityBytes)
	if nil != err {
		return nil, err
	}

	return &Entry{
		BatchCode: string(code),
		EventType: EventType(eventType),
		CreatedAt: int64(createdAt),
		Submitter: submitter,
	}, nil
}

// Pack - binary form of an aggregation entry
//
// event hash(32) ++ root(32) ++ childCount ++ createdAt ++ submitter
func (entry *AggregationEntry) Pack() []byte {
	buffer := make([]byte, 0, 2*merkle.DigestLength+2*util.Varint64MaximumBytes)
	buffer = append(buffer, entry.EventHash[:]...)
	buffer = append(buffer, entry.Root[:]...)
	buffer = append(buffer, util.ToVarint64(entry.ChildCount)...)
	buffer = append(buffer, util.ToVarint64(uint64(entry.CreatedAt))...)
	buffer = appendBytes(buffer, entry.Submitter.Bytes())
	return buffer
}

// UnpackAggregationEntry - decode the binary form of an aggregation entry
func UnpackAggregationEntry(buffer []byte) (*AggregationEntry, error) {
	if len(buffer) < 2*merkle.DigestLength {
		return nil, fault.ErrCorruptRecord
	}

	entry := &AggregationEntry{}
	copy(entry.EventHash[:], buffer[:merkle.DigestLength])
	copy(entry.Root[:], buffer[merkle.DigestLength:2*merkle.DigestLength])
	buffer = buffer[2*merkle.DigestLength:]

	childCount, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.ErrCorruptRecord
	}
	buffer = buffer[n:]

	createdAt, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.ErrCorruptRecord
	}
	buffer = buffer[n:]

	identityBytes, buffer, err := nextBytes(buffer)
	if nil != err {
		return nil, err
	}
	if 0 != len(buffer) {
		return nil, fault.ErrCorruptRecord
	}

	submitter, err := account.IdentityFromBytes(identityBytes)
	if nil != err {
		return nil, err
	}

	entry.ChildCount = childCount
	entry.CreatedAt = int64(createdAt)
	entry.Submitter = submitter
	return entry, nil
}

func appendBytes(buffer []byte, data []byte) []byte {
	return util.AppendCounted(buffer, data)
}

func nextBytes(buffer []byte) ([]byte, []byte, error) {
	data, rest, ok := util.SplitCounted(buffer)
	if !ok {
		return nil, nil, fault.ErrCorruptRecord
	}
	return data, rest, nil
}
