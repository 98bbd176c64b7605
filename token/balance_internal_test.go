// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/agritrace/anchord/account"
	"github.com/agritrace/anchord/fault"
	"github.com/agritrace/anchord/storage"
)

const internalTestingDirName = "testing"

func internalSetup(t *testing.T) *Ledger {
	os.RemoveAll(internalTestingDirName)
	_ = os.Mkdir(internalTestingDirName, 0700)

	logging := logger.Configuration{
		Directory: internalTestingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(internalTestingDirName+"/test.leveldb", false)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	return New(
		storage.Pool.Batches,
		storage.Pool.BatchCode,
		storage.Pool.Balances,
		storage.Pool.Approvals,
		storage.Pool.Lineage,
		storage.Pool.Counters,
	)
}

func internalTeardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(internalTestingDirName)
}

// a credit that would wrap the stored balance must be refused and the
// stored balance left unchanged
func TestCreditOverflow(t *testing.T) {
	ledger := internalSetup(t)
	defer internalTeardown(t)

	publicKey := make([]byte, 32)
	publicKey[0] = 0x66
	holder := &account.Identity{
		Test:      true,
		PublicKey: publicKey,
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	defer trx.Abort()

	err = ledger.credit(trx, holder, 1, math.MaxUint64)
	assert.NoError(t, err, "credit error")

	err = ledger.credit(trx, holder, 1, 1)
	assert.Equal(t, fault.ErrBalanceOverflow, err, "expected overflow rejection")

	balance, _ := trx.GetN(ledger.balances, balanceKey(holder, 1))
	assert.Equal(t, uint64(math.MaxUint64), balance, "balance changed on failure")
}
