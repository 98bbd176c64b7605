// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError   GenericError
	InvalidError  GenericError
	NotFoundError GenericError
	ProcessError  GenericError
)

// common errors - keep in alphabetic order
var (
	ErrAggregationAlreadyAnchored = ExistsError("aggregation already anchored")
	ErrAggregationNotFound        = NotFoundError("aggregation not found")
	ErrAlreadyAnchored            = ExistsError("event already anchored")
	ErrAlreadyInitialised         = ProcessError("already initialised")
	ErrAlreadySettled             = ExistsError("token already settled")
	ErrBalanceOverflow            = InvalidError("balance overflow")
	ErrBatchDoesNotExist          = NotFoundError("batch does not exist")
	ErrCannotCanonicalise         = InvalidError("record cannot be canonicalised")
	ErrCannotDecodeIdentity       = ProcessError("cannot decode identity")
	ErrChecksumMismatch           = ProcessError("checksum mismatch")
	ErrCodeAlreadyExists          = ExistsError("batch code already exists")
	ErrCodeRequired               = InvalidError("batch code is required")
	ErrCorruptRecord              = ProcessError("record is corrupt")
	ErrDuplicateChild             = InvalidError("child is duplicated")
	ErrEventNotFound              = NotFoundError("event not found")
	ErrInsufficientBalance        = InvalidError("insufficient balance")
	ErrInvalidAmount              = InvalidError("amount is invalid")
	ErrInvalidChain               = InvalidError("chain is invalid")
	ErrInvalidContentReference    = InvalidError("content reference is invalid")
	ErrInvalidCount               = InvalidError("count is invalid")
	ErrInvalidCurrency            = InvalidError("currency is invalid")
	ErrInvalidDigestLength        = InvalidError("digest length is invalid")
	ErrInvalidEventType           = InvalidError("event type is invalid")
	ErrInvalidKeyLength           = InvalidError("key length is invalid")
	ErrInvalidKeyType             = InvalidError("key type is invalid")
	ErrInvalidMerkleRoot          = InvalidError("merkle root is invalid")
	ErrInvalidProofIndex          = InvalidError("proof index is invalid")
	ErrInvalidQuantity            = InvalidError("quantity is invalid")
	ErrInvalidRecipient           = InvalidError("recipient is invalid")
	ErrInvalidSignature           = InvalidError("signature is invalid")
	ErrInvalidStructPointer       = InvalidError("invalid struct pointer")
	ErrInvalidSubmitter           = InvalidError("submitter is invalid")
	ErrNotAuthorised              = InvalidError("not authorised")
	ErrNotInitialised             = ProcessError("not initialised")
	ErrNotPublicKey               = ProcessError("not a public key")
	ErrNotSettled                 = NotFoundError("token not settled")
	ErrTransactionAlreadyInUse    = ProcessError("transaction already in use")
	ErrWrongNetworkForPublicKey   = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine if an error is in the exists class
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine if an error is in the invalid class
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine if an error is in the not found class
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine if an error is in the process class
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
