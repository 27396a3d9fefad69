// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scenario - run an ordered list of operations against a tree
//
// Each operation produces a result carrying the trace of a mutation,
// the outcome of a lookup or a view of the whole tree.  Every step is
// written to the scenario logger channel.
package scenario
