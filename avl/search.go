// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - find the node holding a specific value, nil if absent
func (tree *Tree) Find(value int) *Node {
	p := tree.root
	for nil != p {
		switch {
		case value < p.value:
			p = p.left
		case value > p.value:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Depth - number of edges from the root to the node holding value
func (tree *Tree) Depth(value int) (uint, bool) {
	depth := uint(0)
	p := tree.root
	for nil != p {
		switch {
		case value < p.value:
			p = p.left
		case value > p.value:
			p = p.right
		default:
			return depth, true
		}
		depth += 1
	}
	return 0, false
}
