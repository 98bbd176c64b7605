// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"github.com/agritrace/anchord/fault"
)

// ZeroRoot - the result of building a tree over no leaves
//
// never a valid anchor value; callers must check IsZero before
// storing a root
var ZeroRoot Digest

// BuildRoot - compute the root over an ordered list of leaf digests
//
// structure is a binary tree built level by level:
//   0 leaves  -> ZeroRoot sentinel
//   1 leaf    -> the leaf itself
//   n leaves  -> pair up as digest(left ++ right); an odd element at
//                the end of a level is paired with itself, never dropped
//
// the duplication rule must match BuildProof and VerifyProof exactly
// or proofs over odd-size levels silently fail
func BuildRoot(leaves []Digest) Digest {
	if 0 == len(leaves) {
		return ZeroRoot
	}

	level := make([]Digest, len(leaves))
	copy(level, leaves)

	for length := len(level); length > 1; length = (length + 1) / 2 {
		n := 0
		for i := 0; i < length; i += 2 {
			j := i + 1
			if j == length {
				j = i // duplicate the odd element
			}
			level[n] = combine(level[i], level[j])
			n += 1
		}
	}
	return level[0]
}

// BuildProof - sibling digests on the path from leaves[index] to the root
//
// one entry per tree level, ordered leaf side first
func BuildProof(leaves []Digest, index int) ([]Digest, error) {
	if index < 0 || index >= len(leaves) {
		return nil, fault.ErrInvalidProofIndex
	}

	level := make([]Digest, len(leaves))
	copy(level, leaves)

	proof := make([]Digest, 0, 16)
	for length := len(level); length > 1; length = (length + 1) / 2 {
		sibling := index ^ 1
		if sibling >= length {
			sibling = index // odd element pairs with itself
		}
		proof = append(proof, level[sibling])

		n := 0
		for i := 0; i < length; i += 2 {
			j := i + 1
			if j == length {
				j = i
			}
			level[n] = combine(level[i], level[j])
			n += 1
		}
		index /= 2
	}
	return proof, nil
}

// VerifyProof - check that a leaf digest belongs under an expected root
//
// recomputes the root from the leaf and the sibling path: at each
// level combine left if the running index is odd, right if even, then
// halve the index; this is a predicate and never returns an error -
// any mismatch, including an unknown root, is simply false
func VerifyProof(leaf Digest, proof []Digest, index int, expectedRoot Digest) bool {
	if index < 0 || expectedRoot.IsZero() {
		return false
	}

	h := leaf
	for _, sibling := range proof {
		if 1 == index&1 {
			h = combine(sibling, h)
		} else {
			h = combine(h, sibling)
		}
		index /= 2
	}
	return h == expectedRoot
}

// internal pair hash: digest(left ++ right)
func combine(left Digest, right Digest) Digest {
	b := make([]byte, 0, 2*DigestLength)
	b = append(b, left[:]...)
	b = append(b, right[:]...)
	return NewDigest(b)
}
