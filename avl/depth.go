// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// NodesAtDepth - all nodes at a specific depth, left to right
func (tree *Tree) NodesAtDepth(depth uint) []*Node {
	if nil == tree.root {
		return []*Node{}
	}
	return tree.root.childrenByDepth(depth)
}

func (p *Node) childrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.childrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.childrenByDepth(depth-1)...)
		}
	}
	return nodes
}
