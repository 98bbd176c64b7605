// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. event hash   = event digest as 32 byte SHA3-256(canonical record)
// 4. batch number = token identifier as big endian uint64 (8 bytes)
// 5. holder       = identity (packed key variant ++ 32 byte public key)
// 6. quantity     = big endian uint64 (8 bytes)
//
// Anchoring:
//
//   E ++ event hash            - anchored events
//                                data: packed anchor entry
//   G ++ container code        - anchored aggregations
//                                data: packed aggregation entry (incl. merkle root)
//
// Tokens:
//
//   M ++ batch number          - batch metadata
//                                data: packed batch metadata
//   C ++ batch code            - reverse index from unique code
//                                data: batch number
//   Q ++ holder ++ batch number - balance of one holder for one batch
//                                data: quantity
//   P ++ holder ++ operator    - blanket transfer approval
//                                data: 0x01
//   L ++ batch number          - lineage of a container batch
//                                data: child count(varint) ++ [ batch number(varint) ]
//   N ++ "batch"               - next batch number to allocate
//                                data: count
//
// Settlement:
//
//   S ++ batch number          - settlement record
//                                data: packed settlement record
//
// Testing:
//
//   Z ++ key                   - testing data
package storage
