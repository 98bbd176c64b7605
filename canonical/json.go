// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canonical

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/agritrace/anchord/fault"
)

// FromJSON - convert a JSON encoded event record to a Map
//
// accepts only the kinds the canonical form can express: objects,
// arrays, strings and 64 bit integers; floats, exponents, booleans
// and nulls are rejected rather than coerced
func FromJSON(data []byte) (Map, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw interface{}
	err := decoder.Decode(&raw)
	if nil != err {
		return nil, fault.ErrCannotCanonicalise
	}
	if decoder.More() {
		return nil, fault.ErrCannotCanonicalise
	}

	record, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fault.ErrCannotCanonicalise
	}

	m, err := mapFromJSON(record)
	if nil != err {
		return nil, err
	}
	return m, nil
}

func mapFromJSON(record map[string]interface{}) (Map, error) {
	m := make(Map, len(record))
	for k, v := range record {
		value, err := valueFromJSON(v)
		if nil != err {
			return nil, err
		}
		m[k] = value
	}
	return m, nil
}

func valueFromJSON(v interface{}) (Value, error) {
	switch v := v.(type) {
	case string:
		return String(v), nil

	case json.Number:
		s := v.String()
		if strings.ContainsAny(s, ".eE") {
			return nil, fault.ErrCannotCanonicalise
		}
		n, err := v.Int64()
		if nil != err {
			return nil, fault.ErrCannotCanonicalise
		}
		return Int(n), nil

	case map[string]interface{}:
		return mapFromJSON(v)

	case []interface{}:
		l := make(List, len(v))
		for i, item := range v {
			value, err := valueFromJSON(item)
			if nil != err {
				return nil, err
			}
			l[i] = value
		}
		return l, nil

	default:
		// booleans, nulls and anything else
		return nil, fault.ErrCannotCanonicalise
	}
}
