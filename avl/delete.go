// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltrace/fault"
)

// Delete - removes a specific value from the tree
//
// returns the trace of the deletion, a value not in the tree leaves
// the tree unchanged and the trace holds only visit events
func (tree *Tree) Delete(value int) Trace {
	trace := Trace{}
	removed := false
	tree.root, removed = remove(value, tree.root, &trace)
	if removed {
		tree.count -= 1
	}
	return trace
}

// internal delete routine
func remove(value int, p *Node, trace *Trace) (*Node, bool) {
	if nil == p { // value not in tree
		return nil, false
	}

	trace.add(VisitEvent{Node: p.ref()})

	removed := false
	switch {
	case value < p.value:
		p.left, removed = remove(value, p.left, trace)
	case value > p.value:
		p.right, removed = remove(value, p.right, trace)
	default: // found: delete p
		trace.add(DeleteEvent{Node: p.ref()})
		if nil == p.left {
			return p.right, true
		}
		if nil == p.right {
			return p.left, true
		}

		// two children: a new node takes the in-order predecessor's
		// value, then the predecessor is removed from the left branch
		q := newNode(p.left.last().value)
		q.left = p.left
		q.right = p.right
		found := false
		q.left, found = remove(q.value, q.left, trace)
		if !found {
			fault.Panicf("avl: delete at: %d predecessor: %d not found", p.value, q.value)
		}
		trace.add(ReplaceEvent{Old: p.ref(), With: q.ref()})

		p.left = nil
		p.right = nil
		p = q
		removed = true
	}
	if !removed {
		return p, false
	}

	p.recompute()
	return rebalance(p, trace), true
}
