// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agritrace/anchord/storage"
)

// only one transaction may be open at a time
func TestBeginIsExclusive(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.NoError(t, err, "first begin failed")

	_, err = storage.NewDBTransaction()
	assert.Error(t, err, "second begin unexpectedly succeeded")

	trx.Abort()

	trx, err = storage.NewDBTransaction()
	assert.NoError(t, err, "begin after abort failed")
	trx.Abort()
}

// a transaction must observe its own uncommitted writes
func TestReadOwnWrites(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.NoError(t, err, "begin failed")

	trx.Put(p, []byte("pending"), []byte("value"))
	assert.Equal(t, []byte("value"), trx.Get(p, []byte("pending")), "own write invisible")
	assert.True(t, trx.Has(p, []byte("pending")), "own write invisible to Has")

	trx.Delete(p, []byte("pending"))
	assert.Nil(t, trx.Get(p, []byte("pending")), "own delete invisible")
	assert.False(t, trx.Has(p, []byte("pending")), "own delete invisible to Has")

	trx.Abort()
}

// an aborted transaction leaves no trace
func TestAbortDiscardsWrites(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.NoError(t, err, "begin failed")
	trx.Put(p, []byte("discarded"), []byte("value"))
	trx.Abort()

	assert.Nil(t, p.Get([]byte("discarded")), "aborted write reached the database")

	trx, err = storage.NewDBTransaction()
	assert.NoError(t, err, "begin failed")
	err = trx.Commit()
	assert.NoError(t, err, "empty commit failed")
	assert.Nil(t, p.Get([]byte("discarded")), "aborted write reappeared")
}
