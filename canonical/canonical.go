// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canonical

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/agritrace/anchord/fault"
	"github.com/agritrace/anchord/merkle"
)

// Value - one field value of an event record
//
// the set of kinds is closed: String, Int, Map and List are the only
// implementations and the marshaller rejects anything else
type Value interface {
	appendTo(buffer *bytes.Buffer) error
}

// String - a utf-8 text value
type String string

// Int - a 64 bit signed integer value
//
// the only numeric kind; a single base-10 representation eliminates
// alternate encodings of the same number
type Int int64

// Map - an unordered set of named fields
type Map map[string]Value

// List - an ordered sequence of values
type List []Value

// Marshal - canonical byte form of an event record
//
// field order and nesting order never influence the output: keys are
// sorted lexicographically at every level and the encoding carries no
// whitespace; an empty record marshals to the fixed constant "{}"
func Marshal(record Map) ([]byte, error) {
	buffer := &bytes.Buffer{}
	err := record.appendTo(buffer)
	if nil != err {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Hash - fingerprint of an event record
//
// digest of the canonical bytes, so semantically equal records always
// produce the same leaf hash
func Hash(record Map) (merkle.Digest, error) {
	b, err := Marshal(record)
	if nil != err {
		return merkle.Digest{}, err
	}
	return merkle.NewDigest(b), nil
}

func (s String) appendTo(buffer *bytes.Buffer) error {
	b, err := json.Marshal(string(s))
	if nil != err {
		return fault.ErrCannotCanonicalise
	}
	buffer.Write(b)
	return nil
}

func (n Int) appendTo(buffer *bytes.Buffer) error {
	buffer.WriteString(strconv.FormatInt(int64(n), 10))
	return nil
}

func (m Map) appendTo(buffer *bytes.Buffer) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buffer.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buffer.WriteByte(',')
		}
		err := String(k).appendTo(buffer)
		if nil != err {
			return err
		}
		buffer.WriteByte(':')
		err = appendValue(buffer, m[k])
		if nil != err {
			return err
		}
	}
	buffer.WriteByte('}')
	return nil
}

func (l List) appendTo(buffer *bytes.Buffer) error {
	buffer.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			buffer.WriteByte(',')
		}
		err := appendValue(buffer, v)
		if nil != err {
			return err
		}
	}
	buffer.WriteByte(']')
	return nil
}

// reject anything outside the closed kind set, including nil entries
func appendValue(buffer *bytes.Buffer, v Value) error {
	switch v := v.(type) {
	case String, Int, Map, List:
		return v.appendTo(buffer)
	default:
		return fault.ErrCannotCanonicalise
	}
}
