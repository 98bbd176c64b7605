// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"math"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/agritrace/anchord/account"
	"github.com/agritrace/anchord/contentref"
	"github.com/agritrace/anchord/fault"
	"github.com/agritrace/anchord/storage"
)

// the counter record that allocates batch identifiers
var identifierCounterKey = []byte("batch")

// Ledger - balances, batch metadata and lineage
type Ledger struct {
	log       *logger.L
	batches   storage.Handle
	batchCode storage.Handle
	balances  storage.Handle
	approvals storage.Handle
	lineage   storage.Handle
	counters  storage.Handle
}

// New - create a ledger over the given pools
func New(
	batches storage.Handle,
	batchCode storage.Handle,
	balances storage.Handle,
	approvals storage.Handle,
	lineage storage.Handle,
	counters storage.Handle,
) *Ledger {
	return &Ledger{
		log:       logger.New("token"),
		batches:   batches,
		batchCode: batchCode,
		balances:  balances,
		approvals: approvals,
		lineage:   lineage,
		counters:  counters,
	}
}

// Mint - create a new batch and credit its full quantity to recipient
//
// returns the newly allocated identifier; identifiers start at one and
// zero is never allocated
func (ledger *Ledger) Mint(
	trx storage.Transaction,
	recipient *account.Identity,
	quantity uint64,
	code string,
	description string,
	contentRef string,
) (uint64, error) {

	if nil == recipient || recipient.IsZero() {
		return 0, fault.ErrInvalidRecipient
	}
	if 0 == quantity {
		return 0, fault.ErrInvalidQuantity
	}

	identifier, err := ledger.createBatch(trx, code, quantity, description, contentRef, false)
	if nil != err {
		return 0, err
	}

	trx.PutN(ledger.balances, balanceKey(recipient, identifier), quantity)

	ledger.log.Infof("mint: %d code: %q quantity: %d", identifier, code, quantity)
	return identifier, nil
}

// Burn - destroy part of a holder's balance for one batch
func (ledger *Ledger) Burn(
	trx storage.Transaction,
	holder *account.Identity,
	identifier uint64,
	amount uint64,
) error {

	if nil == holder || holder.IsZero() {
		return fault.ErrInvalidRecipient
	}
	if 0 == amount {
		return fault.ErrInvalidAmount
	}
	if !trx.Has(ledger.batches, identifierKey(identifier)) {
		return fault.ErrBatchDoesNotExist
	}

	return ledger.debit(trx, holder, identifier, amount)
}

// Transfer - move quantity between holders
//
// the caller must be the sending holder or hold that holder's approval
func (ledger *Ledger) Transfer(
	trx storage.Transaction,
	caller *account.Identity,
	from *account.Identity,
	to *account.Identity,
	identifier uint64,
	amount uint64,
) error {

	if nil == caller || nil == from || from.IsZero() {
		return fault.ErrInvalidRecipient
	}
	if nil == to || to.IsZero() {
		return fault.ErrInvalidRecipient
	}
	if 0 == amount {
		return fault.ErrInvalidAmount
	}
	if caller.String() != from.String() && !ledger.isApproved(trx, from, caller) {
		return fault.ErrNotAuthorised
	}
	if !trx.Has(ledger.batches, identifierKey(identifier)) {
		return fault.ErrBatchDoesNotExist
	}

	err := ledger.debit(trx, from, identifier, amount)
	if nil != err {
		return err
	}
	return ledger.credit(trx, to, identifier, amount)
}

// SetApproval - grant or revoke blanket transfer rights to an operator
func (ledger *Ledger) SetApproval(
	trx storage.Transaction,
	owner *account.Identity,
	operator *account.Identity,
	approved bool,
) error {

	if nil == owner || owner.IsZero() || nil == operator || operator.IsZero() {
		return fault.ErrInvalidRecipient
	}

	key := approvalKey(owner, operator)
	if approved {
		trx.Put(ledger.approvals, key, []byte{1})
	} else {
		trx.Delete(ledger.approvals, key)
	}
	return nil
}

// IsApproved - check blanket transfer rights
func (ledger *Ledger) IsApproved(owner *account.Identity, operator *account.Identity) bool {
	if nil == owner || nil == operator {
		return false
	}
	return ledger.approvals.Has(approvalKey(owner, operator))
}

// Aggregate - consume child batches into one new container batch
//
// for every child the holder's entire balance is burned, whatever
// amount that is; the burned total must equal containerQuantity
// exactly or the whole operation fails with no balance changes
func (ledger *Ledger) Aggregate(
	trx storage.Transaction,
	recipient *account.Identity,
	containerQuantity uint64,
	code string,
	description string,
	contentRef string,
	childIdentifiers []uint64,
	childHolders []*account.Identity,
) (uint64, error) {

	if nil == recipient || recipient.IsZero() {
		return 0, fault.ErrInvalidRecipient
	}
	if 0 == len(childIdentifiers) || len(childIdentifiers) != len(childHolders) {
		return 0, fault.ErrInvalidCount
	}

	// validation pass: all children must exist, each (holder, child)
	// pair must appear only once and their balances must sum to the
	// container quantity, before anything is written
	total := uint64(0)
	seen := make(map[string]struct{}, len(childIdentifiers))
	for i, child := range childIdentifiers {
		if !trx.Has(ledger.batches, identifierKey(child)) {
			return 0, fault.ErrBatchDoesNotExist
		}
		holder := childHolders[i]
		if nil == holder || holder.IsZero() {
			return 0, fault.ErrInvalidRecipient
		}
		key := balanceKey(holder, child)
		if _, ok := seen[string(key)]; ok {
			return 0, fault.ErrDuplicateChild
		}
		seen[string(key)] = struct{}{}
		balance, _ := trx.GetN(ledger.balances, key)
		if balance > math.MaxUint64-total {
			return 0, fault.ErrBalanceOverflow
		}
		total += balance
	}
	if total != containerQuantity {
		return 0, fault.ErrInvalidQuantity
	}

	container, err := ledger.createBatch(trx, code, containerQuantity, description, contentRef, true)
	if nil != err {
		return 0, err
	}

	for i, child := range childIdentifiers {
		trx.Delete(ledger.balances, balanceKey(childHolders[i], child))
	}
	trx.PutN(ledger.balances, balanceKey(recipient, container), containerQuantity)
	trx.Put(ledger.lineage, identifierKey(container), packLineage(childIdentifiers))

	ledger.log.Infof("aggregate: %d code: %q quantity: %d children: %d",
		container, code, containerQuantity, len(childIdentifiers))
	return container, nil
}

// IsContainer - check if an identifier was created by aggregation
func (ledger *Ledger) IsContainer(identifier uint64) bool {
	metadata, err := ledger.Metadata(identifier)
	if nil != err {
		return false
	}
	return metadata.IsContainer
}

// ChildIdentifiers - the children consumed to create a container
//
// empty for plain batches and unknown identifiers; the list survives
// forever even though the child balances are zero
func (ledger *Ledger) ChildIdentifiers(identifier uint64) []uint64 {
	packed := ledger.lineage.Get(identifierKey(identifier))
	if nil == packed {
		return []uint64{}
	}
	children, err := unpackLineage(packed)
	if nil != err {
		ledger.log.Criticalf("corrupt lineage record for: %d  error: %s", identifier, err)
		return []uint64{}
	}
	return children
}

// BalanceOf - a holder's current quantity for one batch
func (ledger *Ledger) BalanceOf(holder *account.Identity, identifier uint64) uint64 {
	if nil == holder {
		return 0
	}
	balance, _ := ledger.balances.GetN(balanceKey(holder, identifier))
	return balance
}

// Metadata - fetch the batch record for an identifier
func (ledger *Ledger) Metadata(identifier uint64) (*Metadata, error) {
	packed := ledger.batches.Get(identifierKey(identifier))
	if nil == packed {
		return nil, fault.ErrBatchDoesNotExist
	}
	metadata, err := UnpackMetadata(packed)
	if nil != err {
		ledger.log.Criticalf("corrupt batch record for: %d  error: %s", identifier, err)
		return nil, err
	}
	return metadata, nil
}

// IdentifierByCode - reverse lookup from unique batch code
func (ledger *Ledger) IdentifierByCode(code string) (uint64, error) {
	identifier, found := ledger.batchCode.GetN([]byte(code))
	if !found {
		return 0, fault.ErrBatchDoesNotExist
	}
	return identifier, nil
}

// allocate the next identifier and store metadata plus code index
func (ledger *Ledger) createBatch(
	trx storage.Transaction,
	code string,
	quantity uint64,
	description string,
	contentRef string,
	isContainer bool,
) (uint64, error) {

	if "" == code {
		return 0, fault.ErrCodeRequired
	}
	if trx.Has(ledger.batchCode, []byte(code)) {
		return 0, fault.ErrCodeAlreadyExists
	}
	err := contentref.Validate(contentRef)
	if nil != err {
		return 0, err
	}

	last, _ := trx.GetN(ledger.counters, identifierCounterKey)
	identifier := last + 1
	trx.PutN(ledger.counters, identifierCounterKey, identifier)

	metadata := Metadata{
		Code:        code,
		Quantity:    quantity,
		Description: description,
		ContentRef:  contentRef,
		CreatedAt:   time.Now().UTC().Unix(),
		IsContainer: isContainer,
	}
	trx.Put(ledger.batches, identifierKey(identifier), metadata.Pack())
	trx.PutN(ledger.batchCode, []byte(code), identifier)

	return identifier, nil
}

// subtract from a balance, removing the record when it reaches zero
func (ledger *Ledger) debit(
	trx storage.Transaction,
	holder *account.Identity,
	identifier uint64,
	amount uint64,
) error {

	key := balanceKey(holder, identifier)
	balance, _ := trx.GetN(ledger.balances, key)
	if balance < amount {
		return fault.ErrInsufficientBalance
	}
	if balance == amount {
		trx.Delete(ledger.balances, key)
	} else {
		trx.PutN(ledger.balances, key, balance-amount)
	}
	return nil
}

// add to a balance, refusing any addition that would wrap
func (ledger *Ledger) credit(
	trx storage.Transaction,
	holder *account.Identity,
	identifier uint64,
	amount uint64,
) error {
	key := balanceKey(holder, identifier)
	balance, _ := trx.GetN(ledger.balances, key)
	if amount > math.MaxUint64-balance {
		return fault.ErrBalanceOverflow
	}
	trx.PutN(ledger.balances, key, balance+amount)
	return nil
}

// read an approval through the current transaction
func (ledger *Ledger) isApproved(trx storage.Transaction, owner *account.Identity, operator *account.Identity) bool {
	return trx.Has(ledger.approvals, approvalKey(owner, operator))
}

// holder bytes then big endian identifier
func balanceKey(holder *account.Identity, identifier uint64) []byte {
	holderBytes := holder.Bytes()
	return append(holderBytes, identifierKey(identifier)...)
}

// owner bytes then operator bytes
func approvalKey(owner *account.Identity, operator *account.Identity) []byte {
	return append(owner.Bytes(), operator.Bytes()...)
}
