// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltrace/fault"
)

// single right rotation, returns the new sub-tree root
//
//	      p            l
//	     / \          / \
//	    l   c   ->   a   p
//	   / \              / \
//	  a   b            b   c
func rotateRight(p *Node) *Node {
	l := p.left
	if nil == l {
		fault.Panicf("avl: rotate right at: %d without left child", p.value)
	}
	p.left = l.right
	l.right = p

	// child first as parent depends on it
	p.recompute()
	l.recompute()
	return l
}

// single left rotation, returns the new sub-tree root
//
//	    p                r
//	   / \              / \
//	  a   r     ->     p   c
//	     / \          / \
//	    b   c        a   b
func rotateLeft(p *Node) *Node {
	r := p.right
	if nil == r {
		fault.Panicf("avl: rotate left at: %d without right child", p.value)
	}
	p.right = r.left
	r.left = p

	p.recompute()
	r.recompute()
	return r
}

// restore the balance of a node whose height and balance were just
// recomputed, a balance in {-1, 0, +1} leaves the node untouched
func rebalance(p *Node, trace *Trace) *Node {
	switch {
	case p.balance > 1: // left heavy
		pivot := p.ref()
		if balance(p.left) >= 0 {
			trace.add(RotateEvent{Kind: LL, Pivot: pivot})
			return rotateRight(p)
		}
		trace.add(RotateEvent{Kind: LR, Pivot: pivot})
		p.left = rotateLeft(p.left)
		return rotateRight(p)

	case p.balance < -1: // right heavy
		pivot := p.ref()
		if balance(p.right) <= 0 {
			trace.add(RotateEvent{Kind: RR, Pivot: pivot})
			return rotateLeft(p)
		}
		trace.add(RotateEvent{Kind: RL, Pivot: pivot})
		p.right = rotateRight(p.right)
		return rotateLeft(p)

	default:
		return p
	}
}
