// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - quantities of a physical good as ledger balances
//
// each batch of goods is represented by a numeric identifier with
// per-holder balances; identifiers are allocated from a persistent
// counter starting at one so that zero never names a batch
//
// aggregation is burn-then-mint: the full child balances are consumed
// and exactly the same total quantity reappears under one container
// identifier, with a permanent lineage record of the children
package token
