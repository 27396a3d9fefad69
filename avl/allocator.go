// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltrace/counter"
)

// Node - a node in the tree
type Node struct {
	id      uint64 // unique for the process lifetime
	value   int    // key for ordering, never changes
	left    *Node  // left sub-tree
	right   *Node  // right sub-tree
	height  int    // 1 + max(child heights)
	balance int    // height(left) - height(right)
}

// global identity source, ids are never reused
var ids counter.Counter

// allocate a new leaf node with a fresh identity
func newNode(value int) *Node {
	return &Node{
		id:      ids.Increment(),
		value:   value,
		height:  1,
		balance: 0,
	}
}

// ensure that future identities are all greater than id
func advanceIDs(id uint64) {
	ids.Advance(id)
}

// height of a possibly empty sub-tree
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// balance factor of a possibly empty sub-tree
func balance(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// recompute height and balance from the current children
func (p *Node) recompute() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
	p.balance = hl - hr
}

// ID - read the unique identity of a node
func (p *Node) ID() uint64 {
	return p.id
}

// Value - read the value from a node
func (p *Node) Value() int {
	return p.value
}

// Left - left sub-tree or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right sub-tree or nil
func (p *Node) Right() *Node {
	return p.right
}

// Height - height of the sub-tree rooted at this node, a leaf is 1
func (p *Node) Height() int {
	return p.height
}

// Balance - height(left) - height(right)
func (p *Node) Balance() int {
	return p.balance
}

// reference to a node that can outlive the node
func (p *Node) ref() NodeRef {
	return NodeRef{
		ID:    p.id,
		Value: p.value,
	}
}
