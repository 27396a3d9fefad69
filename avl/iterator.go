// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Walk - visit each node in ascending order until f returns false
//
// returns false if the walk was stopped early
func (tree *Tree) Walk(f func(*Node) bool) bool {
	return walk(tree.root, f)
}

func walk(p *Node, f func(*Node) bool) bool {
	if nil == p {
		return true
	}
	if !walk(p.left, f) {
		return false
	}
	if !f(p) {
		return false
	}
	return walk(p.right, f)
}

// InOrder - all values in ascending order
func (tree *Tree) InOrder() []int {
	values := make([]int, 0, tree.count)
	tree.Walk(func(p *Node) bool {
		values = append(values, p.value)
		return true
	})
	return values
}
