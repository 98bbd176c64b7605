// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package settlement - one immutable payment record per batch
//
// records that a batch or container was paid for, in which currency
// and to whom; quantity semantics stay entirely in the token ledger
package settlement

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/agritrace/anchord/account"
	"github.com/agritrace/anchord/currency"
	"github.com/agritrace/anchord/fault"
	"github.com/agritrace/anchord/storage"
	"github.com/agritrace/anchord/util"
)

// Record - the settlement stored per identifier
type Record struct {
	Recipient  *account.Identity `json:"recipient"`
	Amount     uint64            `json:"amount"`
	Currency   currency.Currency `json:"currency"`
	PaymentRef string            `json:"paymentRef"`
	SettledAt  int64             `json:"settledAt"`
}

// Ledger - idempotent settlement store
type Ledger struct {
	log         *logger.L
	settlements storage.Handle
}

// New - create a ledger over the given pool
func New(settlements storage.Handle) *Ledger {
	return &Ledger{
		log:         logger.New("settlement"),
		settlements: settlements,
	}
}

// Settle - write the single settlement record for an identifier
//
// the first record wins; any later attempt fails with ErrAlreadySettled
// and the stored values never change
func (ledger *Ledger) Settle(
	trx storage.Transaction,
	identifier uint64,
	recipient *account.Identity,
	amount uint64,
	c currency.Currency,
	paymentRef string,
) error {

	if nil == recipient || recipient.IsZero() {
		return fault.ErrInvalidRecipient
	}
	if 0 == amount {
		return fault.ErrInvalidAmount
	}
	if !c.IsValid() {
		return fault.ErrInvalidCurrency
	}

	key := identifierKey(identifier)
	if trx.Has(ledger.settlements, key) {
		return fault.ErrAlreadySettled
	}

	record := Record{
		Recipient:  recipient,
		Amount:     amount,
		Currency:   c,
		PaymentRef: paymentRef,
		SettledAt:  time.Now().UTC().Unix(),
	}
	trx.Put(ledger.settlements, key, record.Pack())

	ledger.log.Infof("settle: %d amount: %d %s", identifier, amount, c)
	return nil
}

// IsSettled - check if an identifier has a settlement record
func (ledger *Ledger) IsSettled(identifier uint64) bool {
	return ledger.settlements.Has(identifierKey(identifier))
}

// Settlement - fetch the settlement record for an identifier
func (ledger *Ledger) Settlement(identifier uint64) (*Record, error) {
	packed := ledger.settlements.Get(identifierKey(identifier))
	if nil == packed {
		return nil, fault.ErrNotSettled
	}
	record, err := UnpackRecord(packed)
	if nil != err {
		ledger.log.Criticalf("corrupt settlement record for: %d  error: %s", identifier, err)
		return nil, err
	}
	return record, nil
}

// Decimals - decimal precision of the settled amount
//
// fixed by the currency so it is derived rather than stored
func (record *Record) Decimals() (uint64, error) {
	return record.Currency.DecimalPlaces()
}

// Pack - binary form of a settlement record
//
// currency ++ amount ++ settledAt ++ recipient ++ paymentRef
// (variable length items prefixed by a varint byte count)
func (record *Record) Pack() []byte {
	buffer := util.ToVarint64(record.Currency.Uint64())
	buffer = append(buffer, util.ToVarint64(record.Amount)...)
	buffer = append(buffer, util.ToVarint64(uint64(record.SettledAt))...)
	buffer = util.AppendCounted(buffer, record.Recipient.Bytes())
	buffer = util.AppendCounted(buffer, []byte(record.PaymentRef))
	return buffer
}

// UnpackRecord - decode the binary form of a settlement record
func UnpackRecord(buffer []byte) (*Record, error) {
	currencyValue, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.ErrCorruptRecord
	}
	buffer = buffer[n:]

	c, err := currency.FromUint64(currencyValue)
	if nil != err {
		return nil, err
	}

	amount, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.ErrCorruptRecord
	}
	buffer = buffer[n:]

	settledAt, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.ErrCorruptRecord
	}
	buffer = buffer[n:]

	identityBytes, buffer, ok := util.SplitCounted(buffer)
	if !ok {
		return nil, fault.ErrCorruptRecord
	}
	paymentRef, buffer, ok := util.SplitCounted(buffer)
	if !ok || 0 != len(buffer) {
		return nil, fault.ErrCorruptRecord
	}

	recipient, err := account.IdentityFromBytes(identityBytes)
	if nil != err {
		return nil, err
	}

	return &Record{
		Recipient:  recipient,
		Amount:     amount,
		Currency:   c,
		PaymentRef: string(paymentRef),
		SettledAt:  int64(settledAt),
	}, nil
}

func identifierKey(identifier uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, identifier)
	return key
}
