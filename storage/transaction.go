// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - atomic, all-or-nothing update over any set of pools
//
// every ledger mutation runs inside exactly one transaction: no other
// transaction can begin until this one commits or aborts, and nothing
// reaches the database until Commit
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

type TransactionImpl struct {
	dataAccess Access
}

func newTransaction(dataAccess Access) Transaction {
	return &TransactionImpl{
		dataAccess: dataAccess,
	}
}

func (t *TransactionImpl) Begin() error {
	return t.dataAccess.Begin()
}

func (t *TransactionImpl) Put(h Handle, key []byte, value []byte) {
	h.Put(key, value)
}

func (t *TransactionImpl) PutN(h Handle, key []byte, value uint64) {
	h.PutN(key, value)
}

func (t *TransactionImpl) Delete(h Handle, key []byte) {
	h.Delete(key)
}

func (t *TransactionImpl) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

func (t *TransactionImpl) GetN(h Handle, key []byte) (uint64, bool) {
	return h.GetN(key)
}

func (t *TransactionImpl) Has(h Handle, key []byte) bool {
	return h.Has(key)
}

func (t *TransactionImpl) Commit() error {
	return t.dataAccess.Commit()
}

func (t *TransactionImpl) Abort() {
	t.dataAccess.Abort()
}

func (t *TransactionImpl) InUse() bool {
	return t.dataAccess.InUse()
}
