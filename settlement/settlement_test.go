// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settlement_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/agritrace/anchord/account"
	"github.com/agritrace/anchord/currency"
	"github.com/agritrace/anchord/fault"
	"github.com/agritrace/anchord/settlement"
	"github.com/agritrace/anchord/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
)

var (
	farmer = &account.Identity{
		Test: true,
		PublicKey: []byte{
			0x9f, 0x20, 0x3c, 0x46, 0x41, 0x88, 0x30, 0x70,
			0x85, 0x21, 0x6b, 0xb1, 0x9f, 0x25, 0x51, 0x25,
			0x93, 0xcf, 0x56, 0x0b, 0x52, 0xad, 0x8f, 0x0b,
			0x55, 0xf9, 0x35, 0x33, 0xe9, 0x21, 0x51, 0x02,
		},
	}
)

func setup(t *testing.T) *settlement.Ledger {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName, false)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	return settlement.New(storage.Pool.Settlements)
}

func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func inTransaction(t *testing.T, f func(trx storage.Transaction) error) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return nil
}

func TestSettle(t *testing.T) {
	ledger := setup(t)
	defer teardown(t)

	assert.False(t, ledger.IsSettled(1), "unexpected settlement")

	err := inTransaction(t, func(trx storage.Transaction) error {
		return ledger.Settle(trx, 1, farmer, 250000, currency.GHS, "momo:ref-4711")
	})
	assert.NoError(t, err, "settle error")

	assert.True(t, ledger.IsSettled(1), "missing settlement")

	record, err := ledger.Settlement(1)
	assert.NoError(t, err, "settlement lookup error")
	assert.Equal(t, farmer.String(), record.Recipient.String(), "wrong recipient")
	assert.Equal(t, uint64(250000), record.Amount, "wrong amount")
	assert.Equal(t, currency.GHS, record.Currency, "wrong currency")
	assert.Equal(t, "momo:ref-4711", record.PaymentRef, "wrong payment reference")
	assert.NotZero(t, record.SettledAt, "missing timestamp")

	decimals, err := record.Decimals()
	assert.NoError(t, err, "decimals error")
	assert.Equal(t, uint64(2), decimals, "wrong decimal places")
}

func TestSettleIsFirstWriteWins(t *testing.T) {
	ledger := setup(t)
	defer teardown(t)

	err := inTransaction(t, func(trx storage.Transaction) error {
		return ledger.Settle(trx, 7, farmer, 1000, currency.USD, "")
	})
	assert.NoError(t, err, "settle error")

	err = inTransaction(t, func(trx storage.Transaction) error {
		return ledger.Settle(trx, 7, farmer, 9999, currency.EUR, "second attempt")
	})
	assert.Equal(t, fault.ErrAlreadySettled, err, "expected already settled")

	record, err := ledger.Settlement(7)
	assert.NoError(t, err, "settlement lookup error")
	assert.Equal(t, uint64(1000), record.Amount, "stored record was modified")
	assert.Equal(t, currency.USD, record.Currency, "stored record was modified")
	assert.Equal(t, "", record.PaymentRef, "stored record was modified")
}

func TestSettleRejectsBadInput(t *testing.T) {
	ledger := setup(t)
	defer teardown(t)

	err := inTransaction(t, func(trx storage.Transaction) error {
		return ledger.Settle(trx, 3, nil, 1000, currency.USD, "")
	})
	assert.Equal(t, fault.ErrInvalidRecipient, err, "expected invalid recipient")

	err = inTransaction(t, func(trx storage.Transaction) error {
		return ledger.Settle(trx, 3, &account.Identity{}, 1000, currency.USD, "")
	})
	assert.Equal(t, fault.ErrInvalidRecipient, err, "expected invalid recipient")

	err = inTransaction(t, func(trx storage.Transaction) error {
		return ledger.Settle(trx, 3, farmer, 0, currency.USD, "")
	})
	assert.Equal(t, fault.ErrInvalidAmount, err, "expected invalid amount")

	err = inTransaction(t, func(trx storage.Transaction) error {
		return ledger.Settle(trx, 3, farmer, 1000, currency.Nothing, "")
	})
	assert.Equal(t, fault.ErrInvalidCurrency, err, "expected invalid currency")

	assert.False(t, ledger.IsSettled(3), "rejected settlement was stored")

	_, err = ledger.Settlement(3)
	assert.Equal(t, fault.ErrNotSettled, err, "expected not settled")
}

func TestRecordPackUnpack(t *testing.T) {
	ledger := setup(t)
	defer teardown(t)
	_ = ledger

	record := settlement.Record{
		Recipient:  farmer,
		Amount:     123456,
		Currency:   currency.KES,
		PaymentRef: "bank:0042",
		SettledAt:  1756512000,
	}
	unpacked, err := settlement.UnpackRecord(record.Pack())
	assert.NoError(t, err, "unpack error")
	assert.Equal(t, record.Amount, unpacked.Amount, "wrong amount")
	assert.Equal(t, record.Currency, unpacked.Currency, "wrong currency")
	assert.Equal(t, record.PaymentRef, unpacked.PaymentRef, "wrong payment reference")
	assert.Equal(t, record.SettledAt, unpacked.SettledAt, "wrong timestamp")
	assert.Equal(t, record.Recipient.String(), unpacked.Recipient.String(), "wrong recipient")

	_, err = settlement.UnpackRecord([]byte{0x80})
	assert.Equal(t, fault.ErrCorruptRecord, err, "expected corrupt record")
}
