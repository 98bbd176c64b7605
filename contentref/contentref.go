// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contentref - opaque references to off-chain content
//
// batch metadata carries a reference to externally stored descriptive
// content; the ledger never fetches or interprets the content, it only
// checks that the reference is a well formed CID before storing it
// verbatim
package contentref

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/agritrace/anchord/fault"
)

// Validate - check a content reference is a parseable CID
//
// the empty reference is allowed: off-chain content is optional
func Validate(reference string) error {
	if "" == reference {
		return nil
	}
	_, err := cid.Decode(reference)
	if nil != err {
		return fault.ErrInvalidContentReference
	}
	return nil
}

// Derive - CIDv1 (raw + sha2-256) for a blob of content
//
// for collaborators that store content through this process rather
// than supplying their own reference
func Derive(data []byte) string {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if nil != err {
		// multihash.Sum cannot fail for sha2-256 with default length
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}
