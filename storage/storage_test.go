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

func TestPutGetDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.NoError(t, err, "begin failed")

	p := storage.Pool.TestData
	trx.Put(p, []byte("key-one"), []byte("data-one"))
	trx.Put(p, []byte("key-two"), []byte("data-two"))
	err = trx.Commit()
	assert.NoError(t, err, "commit failed")

	assert.Equal(t, []byte("data-one"), p.Get([]byte("key-one")), "wrong data")
	assert.True(t, p.Has([]byte("key-two")), "missing key")
	assert.Nil(t, p.Get([]byte("key-absent")), "phantom key")

	trx, err = storage.NewDBTransaction()
	assert.NoError(t, err, "begin failed")
	trx.Delete(p, []byte("key-one"))
	err = trx.Commit()
	assert.NoError(t, err, "commit failed")

	assert.Nil(t, p.Get([]byte("key-one")), "deleted key still present")
	assert.Equal(t, []byte("data-two"), p.Get([]byte("key-two")), "unrelated key lost")
}

func TestGetN(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.NoError(t, err, "begin failed")

	p := storage.Pool.TestData
	trx.PutN(p, []byte("counter"), 1234)
	err = trx.Commit()
	assert.NoError(t, err, "commit failed")

	n, found := p.GetN([]byte("counter"))
	assert.True(t, found, "missing counter")
	assert.Equal(t, uint64(1234), n, "wrong counter value")

	n, found = p.GetN([]byte("no-counter"))
	assert.False(t, found, "phantom counter")
	assert.Equal(t, uint64(0), n, "wrong missing counter value")
}

func TestLastElement(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.NoError(t, err, "begin failed")

	p := storage.Pool.TestData
	trx.Put(p, []byte("aaa"), []byte("first"))
	trx.Put(p, []byte("zzz"), []byte("last"))
	trx.Put(p, []byte("mmm"), []byte("middle"))
	err = trx.Commit()
	assert.NoError(t, err, "commit failed")

	e, found := p.LastElement()
	assert.True(t, found, "no last element")
	assert.Equal(t, []byte("zzz"), e.Key, "wrong last key")
	assert.Equal(t, []byte("last"), e.Value, "wrong last value")
}
