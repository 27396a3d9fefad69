// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// IsBalanced - true if every node has a balance in {-1, 0, +1}
func (tree *Tree) IsBalanced() bool {
	return isBalanced(tree.root)
}

func isBalanced(p *Node) bool {
	if nil == p {
		return true
	}
	if b := balance(p); b < -1 || b > 1 {
		return false
	}
	return isBalanced(p.left) && isBalanced(p.right)
}

// CheckHeights - true if the stored height and balance of every node
// agree with its children
func (tree *Tree) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

func checkHeights(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	hr, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if p.height != h || p.balance != hl-hr {
		return 0, false
	}
	return h, true
}

// CheckOrder - true if every left sub-tree holds only smaller values
// and every right sub-tree only larger values
func (tree *Tree) CheckOrder() bool {
	ok := true
	first := true
	previous := 0
	tree.Walk(func(p *Node) bool {
		if !first && p.value <= previous {
			ok = false
			return false
		}
		first = false
		previous = p.value
		return true
	})
	return ok
}

// CheckCount - true if the node count matches the number of nodes
func (tree *Tree) CheckCount() bool {
	n := 0
	tree.Walk(func(*Node) bool {
		n += 1
		return true
	})
	return n == tree.count
}
