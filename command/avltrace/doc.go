// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltrace - apply insert, delete and find operations to an AVL tree
// and show the trace of every structural decision
//
// Operations come from the command line:
//
//	avltrace insert 10 20 30 delete 20 print
//
// or from a Lua configuration file:
//
//	avltrace --config-file=scenario.conf [--watch]
//
// with --watch the scenario is re-run each time the file is written.
package main
