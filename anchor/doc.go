// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package anchor - append-only record of event fingerprints
//
// every supply-chain event is canonicalised, hashed and anchored here
// exactly once; an aggregation additionally records the merkle root
// over its children so any single child can later be proven included
// without re-reading the sibling events
//
// entries are first-write-wins: there is no update and no delete, and
// resubmitting an already anchored hash is an error even when the
// payload is identical
package anchor
