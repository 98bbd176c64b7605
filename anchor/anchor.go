// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package anchor

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/agritrace/anchord/account"
	"github.com/agritrace/anchord/fault"
	"github.com/agritrace/anchord/merkle"
	"github.com/agritrace/anchord/storage"
)

// Ledger - append-only record of anchored events and aggregations
type Ledger struct {
	log          *logger.L
	anchors      storage.Handle
	aggregations storage.Handle
}

// New - create a ledger over the given pools
func New(anchors storage.Handle, aggregations storage.Handle) *Ledger {
	return &Ledger{
		log:          logger.New("anchor"),
		anchors:      anchors,
		aggregations: aggregations,
	}
}

// Anchor - record an event fingerprint
//
// the first write for a given hash wins and later writes for the same
// hash fail with ErrAlreadyAnchored; the stored entry is never updated
func (ledger *Ledger) Anchor(
	trx storage.Transaction,
	eventHash merkle.Digest,
	batchCode string,
	eventType EventType,
	submitter *account.Identity,
) error {

	if !eventType.IsValid() {
		return fault.ErrInvalidEventType
	}
	if nil == submitter || submitter.IsZero() {
		return fault.ErrInvalidSubmitter
	}

	if trx.Has(ledger.anchors, eventHash[:]) {
		return fault.ErrAlreadyAnchored
	}

	entry := Entry{
		BatchCode: batchCode,
		EventType: eventType,
		CreatedAt: time.Now().UTC().Unix(),
		Submitter: submitter,
	}
	trx.Put(ledger.anchors, eventHash[:], entry.Pack())

	ledger.log.Infof("anchor: %v event: %s batch: %q", eventType, eventHash, batchCode)
	return nil
}

// AnchorAggregation - record an aggregation with its merkle root
//
// stores the aggregation entry keyed by container code and also
// anchors the aggregation event hash unless an entry for that hash
// already exists
func (ledger *Ledger) AnchorAggregation(
	trx storage.Transaction,
	eventHash merkle.Digest,
	containerCode string,
	root merkle.Digest,
	childCount uint64,
	submitter *account.Identity,
) error {

	if root.IsZero() {
		return fault.ErrInvalidMerkleRoot
	}
	if 0 == childCount {
		return fault.ErrInvalidCount
	}
	if nil == submitter || submitter.IsZero() {
		return fault.ErrInvalidSubmitter
	}

	if trx.Has(ledger.aggregations, []byte(containerCode)) {
		return fault.ErrAggregationAlreadyAnchored
	}

	createdAt := time.Now().UTC().Unix()

	aggregation := AggregationEntry{
		EventHash:  eventHash,
		Root:       root,
		ChildCount: childCount,
		CreatedAt:  createdAt,
		Submitter:  submitter,
	}
	trx.Put(ledger.aggregations, []byte(containerCode), aggregation.Pack())

	// the first anchor for an event hash wins; an event hash that was
	// already anchored keeps its original entry untouched
	if !trx.Has(ledger.anchors, eventHash[:]) {
		entry := Entry{
			BatchCode: containerCode,
			EventType: Aggregate,
			CreatedAt: createdAt,
			Submitter: submitter,
		}
		trx.Put(ledger.anchors, eventHash[:], entry.Pack())
	}

	ledger.log.Infof("aggregation: %q root: %s children: %d", containerCode, root, childCount)
	return nil
}

// IsAnchored - check if an event hash has been anchored
func (ledger *Ledger) IsAnchored(eventHash merkle.Digest) bool {
	return ledger.anchors.Has(eventHash[:])
}

// EventMetadata - fetch the entry stored for an event hash
func (ledger *Ledger) EventMetadata(eventHash merkle.Digest) (*Entry, error) {
	packed := ledger.anchors.Get(eventHash[:])
	if nil == packed {
		return nil, fault.ErrEventNotFound
	}
	entry, err := UnpackEntry(packed)
	if nil != err {
		ledger.log.Criticalf("corrupt anchor entry for: %s  error: %s", eventHash, err)
		return nil, err
	}
	return entry, nil
}

// Aggregation - fetch the aggregation stored for a container code
func (ledger *Ledger) Aggregation(containerCode string) (*AggregationEntry, error) {
	packed := ledger.aggregations.Get([]byte(containerCode))
	if nil == packed {
		return nil, fault.ErrAggregationNotFound
	}
	entry, err := UnpackAggregationEntry(packed)
	if nil != err {
		ledger.log.Criticalf("corrupt aggregation entry for: %q  error: %s", containerCode, err)
		return nil, err
	}
	return entry, nil
}

// VerifyInclusion - check a merkle proof against a stored aggregation
//
// false for unknown containers and for any proof failure; never errors
func (ledger *Ledger) VerifyInclusion(
	containerCode string,
	leaf merkle.Digest,
	proof []merkle.Digest,
	index int,
) bool {

	entry, err := ledger.Aggregation(containerCode)
	if nil != err {
		return false
	}
	return merkle.VerifyProof(leaf, proof, index, entry.Root)
}
