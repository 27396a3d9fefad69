// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of integer values that records a
// trace of every structural decision made by each insert or delete
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Heights are stored in each node and the balance factor is derived
// as height(left) - height(right), so a node at rest always has a
// balance in {-1, 0, +1}.
//
// The trace returned by Insert and Delete lists, in order, every node
// visited, created, deleted or replaced and every rotation applied.
// Trace events hold copies of node identity and value so a trace
// remains meaningful after the nodes it refers to have been removed.
//
// Deleting a node with two children does not relabel it in place:
// a new node with a fresh identity is created carrying the in-order
// predecessor's value.
package avl
