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

func TestScanFmt(t *testing.T) {
	stringDigest := "644bcc7e564373040999aac89e7622f3ca71fba1d972fd94a31c3bfbf24e3938"

	var d merkle.Digest
	n, err := fmt.Sscan(stringDigest, &d)
	if nil != err {
		t.Fatalf("hex to digest error: %v", err)
	}

	if 1 != n {
		t.Fatalf("scanned %d items expected to scan 1", n)
	}

	s := fmt.Sprintf("%s", d)
	if s != stringDigest {
		t.Errorf("string: digest = %s expected %s", s, stringDigest)
	}

	s = fmt.Sprintf("%#v", d)
	if s != "<SHA3-256:"+stringDigest+">" {
		t.Errorf("go string: digest = %s expected %s", s, stringDigest)
	}
}

func TestDigest(t *testing.T) {
	s := []byte("hello world")
	d := merkle.NewDigest(s)

	// printf '%s' 'hello world' | sha3sum -a 256
	stringDigest := "644bcc7e564373040999aac89e7622f3ca71fba1d972fd94a31c3bfbf24e3938"

	var expected merkle.Digest
	n, err := fmt.Sscan(stringDigest, &expected)
	if nil != err {
		t.Fatalf("hex to digest error: %v", err)
	}

	if 1 != n {
		t.Fatalf("scanned %d items expected to scan 1", n)
	}

	if d != expected {
		t.Errorf("digest = %#v expected %#v", d, expected)
	}
}

func TestMarshalText(t *testing.T) {
	d := merkle.NewDigest([]byte("batch-0001"))

	text, err := d.MarshalText()
	if nil != err {
		t.Fatalf("marshal text error: %v", err)
	}

	var restored merkle.Digest
	err = restored.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal text error: %v", err)
	}

	if restored != d {
		t.Errorf("restored: %#v  expected: %#v", restored, d)
	}
}

func TestDigestFromBytes(t *testing.T) {
	d := merkle.NewDigest([]byte("batch-0002"))

	var restored merkle.Digest
	err := merkle.DigestFromBytes(&restored, d[:])
	if nil != err {
		t.Fatalf("digest from bytes error: %v", err)
	}
	if restored != d {
		t.Errorf("restored: %#v  expected: %#v", restored, d)
	}

	err = merkle.DigestFromBytes(&restored, d[:DigestHalf])
	if nil == err {
		t.Error("digest from short bytes unexpectedly succeeded")
	}
}

const DigestHalf = merkle.DigestLength / 2
