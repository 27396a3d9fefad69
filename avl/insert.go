// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new value into the tree
//
// returns the trace of the insertion, a value already in the tree
// leaves the tree unchanged and the trace has no create event
func (tree *Tree) Insert(value int) Trace {
	trace := Trace{}
	added := false
	tree.root, added = insert(value, tree.root, &trace)
	if added {
		tree.count += 1
	}
	return trace
}

// internal routine for insert
func insert(value int, p *Node, trace *Trace) (*Node, bool) {
	if nil == p { // insert new node
		p = newNode(value)
		trace.add(CreateEvent{Node: p.ref()})
		return p, true
	}

	trace.add(VisitEvent{Node: p.ref()})

	added := false
	switch {
	case value < p.value:
		p.left, added = insert(value, p.left, trace)
	case value > p.value:
		p.right, added = insert(value, p.right, trace)
	default: // duplicate
		return p, false
	}
	if !added {
		return p, false
	}

	p.recompute()
	return rebalance(p, trace), true
}
