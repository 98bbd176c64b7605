// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/agritrace/anchord/fault"
	"github.com/agritrace/anchord/util"
)

// enumeration of supported key algorithms
const (
	ED25519 = iota + 1
	// end of list (one greater than last item)
	algorithmLimit = iota + 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Identity - a holder, submitter or recipient of ledger records
//
// an ed25519 public key plus a network flag; the text form is Base58
// of: varint(key variant) ++ public key ++ 4 byte SHA3-256 checksum
type Identity struct {
	Test      bool
	PublicKey []byte
}

// IdentityFromBase58 - convert a Base58 encoded string to an identity
func IdentityFromBase58(identityBase58Encoded string) (*Identity, error) {
	decoded, err := base58.Decode(identityBase58Encoded)
	if nil != err || 0 == len(decoded) {
		return nil, fault.ErrCannotDecodeIdentity
	}

	// verify the checksum
	checksumStart := len(decoded) - checksumLength
	if checksumStart <= 0 {
		return nil, fault.ErrCannotDecodeIdentity
	}
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return IdentityFromBytes(decoded[:checksumStart])
}

// IdentityFromBytes - convert a binary packed identity (without checksum)
func IdentityFromBytes(identityBytes []byte) (*Identity, error) {
	keyVariant, keyVariantLength := util.FromVarint64(identityBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm < 1 || keyAlgorithm >= algorithmLimit {
		return nil, fault.ErrInvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode

	publicKey := identityBytes[keyVariantLength:]
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}

	identity := &Identity{
		Test:      isTest,
		PublicKey: publicKey,
	}
	return identity, nil
}

// Bytes - binary packed form: varint(key variant) ++ public key
func (identity *Identity) Bytes() []byte {
	keyVariant := uint64(ED25519)<<algorithmShift | publicKeyCode
	if identity.Test {
		keyVariant |= testKeyCode
	}
	return append(util.ToVarint64(keyVariant), identity.PublicKey...)
}

// String - Base58 text form including the checksum
func (identity Identity) String() string {
	buffer := identity.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for use by the fmt package (for %#v)
func (identity Identity) GoString() string {
	return "<identity:" + identity.String() + ">"
}

// MarshalText - convert identity to Base58 text
func (identity Identity) MarshalText() ([]byte, error) {
	return []byte(identity.String()), nil
}

// UnmarshalText - convert Base58 text into an identity
func (identity *Identity) UnmarshalText(s []byte) error {
	i, err := IdentityFromBase58(string(s))
	if nil != err {
		return err
	}
	identity.Test = i.Test
	identity.PublicKey = i.PublicKey
	return nil
}

// CheckSignature - verify an ed25519 signature over a message
func (identity *Identity) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(identity.PublicKey, message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// IsZero - true for a nil or empty identity
//
// used to reject the zero recipient, which is never a valid
// destination for tokens or settlements
func (identity *Identity) IsZero() bool {
	if nil == identity || 0 == len(identity.PublicKey) {
		return true
	}
	for _, b := range identity.PublicKey {
		if 0 != b {
			return false
		}
	}
	return true
}
