// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltrace/fault"
)

// SnapshotNode - serialisable shape of a sub-tree
//
// height and balance are not stored, they are recomputed on rebuild
type SnapshotNode struct {
	ID    uint64        `json:"id"`
	Value int           `json:"value"`
	Left  *SnapshotNode `json:"left,omitempty"`
	Right *SnapshotNode `json:"right,omitempty"`
}

// Snapshot - copy of the current tree shape, nil for an empty tree
func (tree *Tree) Snapshot() *SnapshotNode {
	return snapshot(tree.root)
}

func snapshot(p *Node) *SnapshotNode {
	if nil == p {
		return nil
	}
	return &SnapshotNode{
		ID:    p.id,
		Value: p.value,
		Left:  snapshot(p.left),
		Right: snapshot(p.right),
	}
}

// Rebuild - create a tree with the same shape and identities as a snapshot
//
// identities are kept, and no identity up to the largest one in the
// snapshot will be allocated afterwards
func Rebuild(s *SnapshotNode) (*Tree, error) {
	r := rebuilder{
		seen: make(map[uint64]struct{}),
	}
	p, err := r.build(s, nil, nil)
	if nil != err {
		return nil, err
	}
	if !isBalanced(p) {
		return nil, fault.ErrSnapshotUnbalanced
	}

	advanceIDs(r.maxID)

	return &Tree{
		root:  p,
		count: len(r.seen),
	}, nil
}

// state for one rebuild
type rebuilder struct {
	seen  map[uint64]struct{}
	maxID uint64
}

// build a sub-tree whose values must lie strictly between the bounds
func (r *rebuilder) build(s *SnapshotNode, low *int, high *int) (*Node, error) {
	if nil == s {
		return nil, nil
	}
	if nil != low && s.Value <= *low {
		return nil, fault.ErrSnapshotNotOrdered
	}
	if nil != high && s.Value >= *high {
		return nil, fault.ErrSnapshotNotOrdered
	}
	if 0 == s.ID {
		return nil, fault.ErrSnapshotZeroID
	}
	if _, ok := r.seen[s.ID]; ok {
		return nil, fault.ErrSnapshotDuplicateID
	}
	r.seen[s.ID] = struct{}{}
	if s.ID > r.maxID {
		r.maxID = s.ID
	}

	value := s.Value
	left, err := r.build(s.Left, low, &value)
	if nil != err {
		return nil, err
	}
	right, err := r.build(s.Right, &value, high)
	if nil != err {
		return nil, err
	}

	p := &Node{
		id:    s.ID,
		value: s.Value,
		left:  left,
		right: right,
	}
	p.recompute()
	return p, nil
}
