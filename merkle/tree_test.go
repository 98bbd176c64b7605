// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"fmt"
	"testing"

	"github.com/agritrace/anchord/merkle"
)

// build a deterministic list of distinct leaf digests
func makeLeaves(n int) []merkle.Digest {
	leaves := make([]merkle.Digest, n)
	for i := 0; i < n; i += 1 {
		leaves[i] = merkle.NewDigest([]byte(fmt.Sprintf("leaf-%d", i)))
	}
	return leaves
}

func TestEmptyTree(t *testing.T) {
	root := merkle.BuildRoot(nil)
	if !root.IsZero() {
		t.Errorf("root of empty tree: %#v  expected zero sentinel", root)
	}
}

func TestSingleLeaf(t *testing.T) {
	leaves := makeLeaves(1)
	root := merkle.BuildRoot(leaves)
	if root != leaves[0] {
		t.Errorf("root: %#v  expected the leaf: %#v", root, leaves[0])
	}
}

// the odd element of a level pairs with itself, so a 3 leaf tree has
// the same root as the same leaves with the last one repeated
func TestOddLevelDuplication(t *testing.T) {
	a := merkle.NewDigest([]byte("a"))
	b := merkle.NewDigest([]byte("b"))
	c := merkle.NewDigest([]byte("c"))

	root3 := merkle.BuildRoot([]merkle.Digest{a, b, c})
	root4 := merkle.BuildRoot([]merkle.Digest{a, b, c, c})
	if root3 != root4 {
		t.Errorf("3 leaf root: %#v  4 leaf (duplicated) root: %#v", root3, root4)
	}

	// a proof for the odd leaf must verify against the padded root
	proof, err := merkle.BuildProof([]merkle.Digest{a, b, c}, 2)
	if nil != err {
		t.Fatalf("build proof error: %v", err)
	}
	if !merkle.VerifyProof(c, proof, 2, root3) {
		t.Error("proof for odd leaf failed to verify")
	}
}

func TestProofRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 15, 16, 33, 100, 255, 256, 1000} {
		leaves := makeLeaves(n)
		root := merkle.BuildRoot(leaves)

		for index := 0; index < n; index += 1 {
			proof, err := merkle.BuildProof(leaves, index)
			if nil != err {
				t.Fatalf("n: %d  index: %d  build proof error: %v", n, index, err)
			}
			if !merkle.VerifyProof(leaves[index], proof, index, root) {
				t.Errorf("n: %d  index: %d  proof failed to verify", n, index)
			}
		}
	}
}

func TestProofTamperDetection(t *testing.T) {
	leaves := makeLeaves(12)
	root := merkle.BuildRoot(leaves)

	index := 5
	proof, err := merkle.BuildProof(leaves, index)
	if nil != err {
		t.Fatalf("build proof error: %v", err)
	}

	// flip one bit of the leaf
	tampered := leaves[index]
	tampered[0] ^= 0x01
	if merkle.VerifyProof(tampered, proof, index, root) {
		t.Error("tampered leaf unexpectedly verified")
	}

	// flip one bit of each proof element in turn
	for i := range proof {
		mangled := make([]merkle.Digest, len(proof))
		copy(mangled, proof)
		mangled[i][merkle.DigestLength-1] ^= 0x80
		if merkle.VerifyProof(leaves[index], mangled, index, root) {
			t.Errorf("tampered proof element %d unexpectedly verified", i)
		}
	}

	// wrong index
	if merkle.VerifyProof(leaves[index], proof, index+1, root) {
		t.Error("wrong index unexpectedly verified")
	}
}

func TestProofIndexRange(t *testing.T) {
	leaves := makeLeaves(4)

	_, err := merkle.BuildProof(leaves, -1)
	if nil == err {
		t.Error("negative index unexpectedly succeeded")
	}

	_, err = merkle.BuildProof(leaves, len(leaves))
	if nil == err {
		t.Error("out of range index unexpectedly succeeded")
	}
}

// the zero sentinel is never a verifiable root
func TestZeroRootNeverVerifies(t *testing.T) {
	leaves := makeLeaves(3)
	proof, err := merkle.BuildProof(leaves, 0)
	if nil != err {
		t.Fatalf("build proof error: %v", err)
	}
	if merkle.VerifyProof(leaves[0], proof, 0, merkle.ZeroRoot) {
		t.Error("zero root unexpectedly verified")
	}
}
